// Package export renders transaction collections to CSV and JSON. CSV output
// shares the import side's injection contract: field values that could be
// interpreted as spreadsheet formulas are neutralized with a quote prefix.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"finsight/internal/models"

	"github.com/gocarina/gocsv"
)

// csvRow is the fixed export schema. Header order is part of the contract.
type csvRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Merchant    string `csv:"Merchant"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
}

// jsonRow is the JSON export shape: internal ids and import timestamps are
// stripped.
type jsonRow struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Merchant    string  `json:"merchant"`
	Category    string  `json:"category"`
	Source      string  `json:"source"`
}

// neutralizeFormula prefixes a value with a literal single quote when its
// first character could trigger formula execution in spreadsheet software.
func neutralizeFormula(value string) string {
	if len(value) == 0 {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + value
	}
	return value
}

// ToCSV renders transactions as RFC4180 CSV with the header line
// "Date,Description,Amount,Merchant,Category,Source". Text fields are
// formula-neutralized; quoting and escaping are handled by the CSV writer.
func ToCSV(transactions []models.Transaction) (string, error) {
	rows := make([]csvRow, len(transactions))
	for i, t := range transactions {
		rows[i] = csvRow{
			Date:        t.TxnDate,
			Description: neutralizeFormula(t.Description),
			Amount:      models.FormatAmount(t.Amount),
			Merchant:    neutralizeFormula(t.Merchant),
			Category:    neutralizeFormula(t.Category),
			Source:      neutralizeFormula(t.Source),
		}
	}

	// A plain csv.Writer satisfies gocsv's CSVWriter interface. gocsv's own
	// SafeCSVWriter is not used here: it would also quote-prefix negative
	// amounts, while the contract neutralizes text fields only.
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(&rows, writer); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ToJSON renders transactions as an indented JSON array without ids or
// import timestamps.
func ToJSON(transactions []models.Transaction) (string, error) {
	rows := make([]jsonRow, len(transactions))
	for i, t := range transactions {
		rows[i] = jsonRow{
			Date:        t.TxnDate,
			Description: t.Description,
			Amount:      t.Amount,
			Merchant:    t.Merchant,
			Category:    t.Category,
			Source:      t.Source,
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling JSON: %w", err)
	}
	return string(data), nil
}
