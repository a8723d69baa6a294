// Package importer turns bank-statement CSV exports of unknown schema into
// canonical transactions. Malformed rows never abort an import: they are
// skipped, counted and reported through aggregate human-readable warnings.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"finsight/internal/currencyutils"
	"finsight/internal/dateutils"
	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/parsererror"
	"finsight/internal/textutils"
)

// MaxFileBytes is the hard ceiling on import content size, checked before any
// parsing work happens.
const MaxFileBytes = 10 * 1024 * 1024

// maxStructuralDetails caps how many offending rows the structural-issues
// warning names. The warning stays a single string either way.
const maxStructuralDetails = 5

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse imports CSV content under the given source label. It never returns an
// error: fatal-to-file conditions (oversized content, empty file, missing
// required columns) yield zero transactions plus a specific warning, and
// row-level failures are skipped and summarized.
func Parse(content string, sourceLabel string) models.ImportResult {
	return ParseWithOptions(content, sourceLabel, MaxFileBytes, ',')
}

// ParseWithOptions is Parse with a caller-supplied size ceiling and field
// delimiter.
func ParseWithOptions(content string, sourceLabel string, maxBytes int64, delimiter rune) models.ImportResult {
	var warnings []string

	if int64(len(content)) > maxBytes {
		log.WithField(logging.FieldSource, sourceLabel).Warn("Rejecting oversized import")
		return models.ImportResult{
			Transactions: []models.Transaction{},
			Warnings:     []string{fmt.Sprintf("File exceeds %s size limit. Please split into smaller files.", limitLabel(maxBytes))},
			Count:        0,
		}
	}

	content = strings.TrimPrefix(content, "\uFEFF")

	header, rows, structuralIssues := readRecords(content, delimiter)
	if len(structuralIssues) > 0 {
		warnings = append(warnings, "CSV parsing issues: "+strings.Join(structuralIssues, "; "))
	}

	if len(rows) == 0 {
		return models.ImportResult{
			Transactions: []models.Transaction{},
			Warnings:     []string{"CSV file is empty or has no data rows."},
			Count:        0,
		}
	}

	layout := detectColumns(header)

	if layout.date < 0 {
		return fileFailure(sourceLabel, fmt.Sprintf("Could not detect a date column. Found columns: %s", strings.Join(header, ", ")))
	}
	if layout.description < 0 {
		return fileFailure(sourceLabel, fmt.Sprintf("Could not detect a description column. Found columns: %s", strings.Join(header, ", ")))
	}
	if layout.amount < 0 && (layout.debit < 0 || layout.credit < 0) {
		return fileFailure(sourceLabel, "Could not detect amount column. Need either 'amount' OR both 'debit' and 'credit'.")
	}

	transactions := make([]models.Transaction, 0, len(rows))
	skipped := 0
	ambiguousDates := 0
	importedAt := models.Now()
	safeSource := textutils.SanitizeSourceName(sourceLabel)

	for i, row := range rows {
		txn, ambiguous, err := convertRow(row, layout, i)
		if err != nil {
			log.WithError(err).Debug("Skipping row")
			skipped++
			continue
		}
		if ambiguous {
			ambiguousDates++
		}

		txn.ID = models.NewTransactionID()
		txn.Category = models.CategoryUncategorised
		txn.Source = safeSource
		txn.ImportedAt = importedAt
		transactions = append(transactions, txn)
	}

	if skipped > 0 {
		warnings = append(warnings, fmt.Sprintf("%d row(s) were skipped due to invalid or missing data.", skipped))
	}
	if ambiguousDates > 0 {
		warnings = append(warnings, fmt.Sprintf("%d date(s) were ambiguous (DD/MM vs MM/DD). DD/MM/YYYY format was assumed.", ambiguousDates))
	}

	// Fixed-width ISO dates make lexicographic order chronological.
	sortByDate(transactions)

	log.WithFields(
		logging.Field{Key: logging.FieldSource, Value: safeSource},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldSkipped, Value: skipped},
	).Info("Imported CSV content")

	if warnings == nil {
		warnings = []string{}
	}
	return models.ImportResult{
		Transactions: transactions,
		Warnings:     warnings,
		Count:        len(transactions),
	}
}

// limitLabel renders a size ceiling for the oversize warning: whole megabytes
// when the limit is MiB-aligned, raw bytes otherwise.
func limitLabel(maxBytes int64) string {
	const mb = 1024 * 1024
	if maxBytes%mb == 0 {
		return fmt.Sprintf("%dMB", maxBytes/mb)
	}
	return fmt.Sprintf("%d bytes", maxBytes)
}

// readRecords splits content into a trimmed header row and data rows.
// Structural parse errors are collected per row, capped at
// maxStructuralDetails entries, and never abort the read.
func readRecords(content string, delimiter rune) (header []string, rows [][]string, issues []string) {
	reader := csv.NewReader(strings.NewReader(content))
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1

	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			if len(issues) < maxStructuralDetails {
				issues = append(issues, fmt.Sprintf("Row %d: %v", rowNum, err))
			}
			continue
		}
		if isEmptyRecord(record) {
			continue
		}
		if header == nil {
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
			header = record
			continue
		}
		rows = append(rows, record)
	}
	return header, rows, issues
}

// convertRow parses one data row into a transaction. Any failure is returned
// as a RowError; the caller decides to skip and count.
func convertRow(row []string, layout columnLayout, index int) (models.Transaction, bool, error) {
	rowNum := index + 2 // 1-based, after the header line

	isoDate, ambiguous, err := dateutils.ParseStatementDate(cell(row, layout.date))
	if err != nil {
		return models.Transaction{}, false, &parsererror.RowError{Row: rowNum, Field: "date", Value: cell(row, layout.date), Err: err}
	}

	description := textutils.SanitizeCell(strings.TrimSpace(cell(row, layout.description)))
	if description == "" {
		return models.Transaction{}, false, &parsererror.RowError{Row: rowNum, Field: "description", Value: "", Err: fmt.Errorf("empty after sanitization")}
	}

	amount, err := resolveAmount(row, layout, rowNum)
	if err != nil {
		return models.Transaction{}, false, err
	}

	return models.Transaction{
		TxnDate:     isoDate,
		Description: description,
		Amount:      amount,
		Merchant:    textutils.ExtractMerchant(description),
	}, ambiguous, nil
}

// resolveAmount computes the signed amount from either the single amount
// column or the debit/credit pair (amount = credit - abs(debit)).
func resolveAmount(row []string, layout columnLayout, rowNum int) (float64, error) {
	if layout.amount >= 0 {
		raw := cell(row, layout.amount)
		amount, err := currencyutils.ParseCellAmount(raw)
		if err != nil {
			return 0, &parsererror.RowError{Row: rowNum, Field: "amount", Value: raw, Err: err}
		}
		f, _ := amount.Float64()
		return f, nil
	}

	debit, debitErr := currencyutils.ParseCellAmount(cell(row, layout.debit))
	credit, creditErr := currencyutils.ParseCellAmount(cell(row, layout.credit))
	if debitErr != nil && creditErr != nil {
		return 0, &parsererror.RowError{Row: rowNum, Field: "debit/credit", Value: "", Err: fmt.Errorf("neither column parsable")}
	}
	if debit.IsZero() && credit.IsZero() {
		return 0, &parsererror.RowError{Row: rowNum, Field: "debit/credit", Value: "", Err: fmt.Errorf("both columns zero")}
	}
	f, _ := credit.Sub(debit.Abs()).Float64()
	return f, nil
}

// cell returns the value at idx, tolerating short records.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func fileFailure(source, warning string) models.ImportResult {
	log.WithError(&parsererror.FileError{Source: source, Reason: warning}).Warn("Import failed")
	return models.ImportResult{
		Transactions: []models.Transaction{},
		Warnings:     []string{warning},
		Count:        0,
	}
}

func sortByDate(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TxnDate < transactions[j].TxnDate
	})
}
