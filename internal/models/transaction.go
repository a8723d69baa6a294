// Package models defines the canonical data types shared by the import,
// categorization, analytics and persistence layers.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transaction is the canonical record produced by import, independent of the
// source file schema. Content is immutable after import; only Category is
// rewritten when rules are re-applied.
type Transaction struct {
	ID          string  `json:"id"`
	TxnDate     string  `json:"txnDate"` // YYYY-MM-DD, no time component
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // negative = expense, positive = income
	Merchant    string  `json:"merchant"`
	Category    string  `json:"category"`
	Source      string  `json:"source"`
	ImportedAt  string  `json:"importedAt"` // RFC3339 timestamp of ingestion
}

// NewTransactionID generates a fresh opaque transaction identifier.
func NewTransactionID() string {
	return uuid.New().String()
}

// DedupKey returns the composite key used for append-time deduplication.
func (t Transaction) DedupKey() string {
	return t.TxnDate + "|" + t.Description + "|" + FormatAmount(t.Amount)
}

// IsExpense returns true if the transaction is an expense (negative amount).
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// IsIncome returns true if the transaction is income (positive amount).
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// MerchantKey returns the grouping key for merchant-level views: the trimmed
// merchant, falling back to the trimmed description when blank.
func (t Transaction) MerchantKey() string {
	if m := strings.TrimSpace(t.Merchant); m != "" {
		return m
	}
	return strings.TrimSpace(t.Description)
}

// ImportResult is the outcome of one CSV import. Warnings are plain
// human-readable strings intended for direct user display.
type ImportResult struct {
	Transactions []Transaction `json:"transactions"`
	Warnings     []string      `json:"warnings"`
	Count        int           `json:"count"`
}

// CategoryRule is a user-editable categorization rule. Rules are data, not
// code: the pattern is a regular expression source evaluated at runtime.
// Evaluation order is (Priority asc, ID asc), deterministic for equal
// priorities.
type CategoryRule struct {
	ID       string `json:"id"`
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Priority int    `json:"priority"` // lower wins
	Enabled  bool   `json:"enabled"`
}

// Now returns the shared import timestamp format for the current instant.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
