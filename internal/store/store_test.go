package store

import (
	"os"
	"path/filepath"
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction(id, date, description string, amount float64) models.Transaction {
	return models.Transaction{
		ID:          id,
		TxnDate:     date,
		Description: description,
		Amount:      amount,
		Merchant:    "merchant",
		Category:    "Groceries",
		Source:      "statement.csv",
		ImportedAt:  "2025-02-01T00:00:00Z",
	}
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	s := New(t.TempDir())
	assert.Empty(t, s.LoadTransactions())
}

func TestLoadTransactionsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{not json"), 0640))

	s := New(dir)
	assert.Empty(t, s.LoadTransactions())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "data"))

	original := []models.Transaction{
		sampleTransaction("1", "2025-01-15", "WOOLWORTHS", -54.20),
		sampleTransaction("2", "2025-01-16", "SALARY", 2500.00),
	}
	require.NoError(t, s.SaveTransactions(original))

	loaded := s.LoadTransactions()
	assert.Equal(t, original, loaded)
}

func TestAppendTransactionsDeduplicates(t *testing.T) {
	s := New(t.TempDir())

	first := []models.Transaction{
		sampleTransaction("1", "2025-01-15", "WOOLWORTHS", -54.20),
	}
	total, err := s.AppendTransactions(first)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Same date/description/amount with a fresh id is still a duplicate.
	second := []models.Transaction{
		sampleTransaction("99", "2025-01-15", "WOOLWORTHS", -54.20),
		sampleTransaction("3", "2025-01-16", "COFFEE", -4.50),
	}
	total, err = s.AppendTransactions(second)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	loaded := s.LoadTransactions()
	require.Len(t, loaded, 2)
	assert.Equal(t, "1", loaded[0].ID)
	assert.Equal(t, "3", loaded[1].ID)
}

func TestAppendTransactionsDuplicatesWithinBatch(t *testing.T) {
	s := New(t.TempDir())

	batch := []models.Transaction{
		sampleTransaction("1", "2025-01-15", "WOOLWORTHS", -54.20),
		sampleTransaction("2", "2025-01-15", "WOOLWORTHS", -54.20),
	}
	total, err := s.AppendTransactions(batch)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestClearTransactions(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.AppendTransactions([]models.Transaction{
		sampleTransaction("1", "2025-01-15", "WOOLWORTHS", -54.20),
	})
	require.NoError(t, err)

	require.NoError(t, s.ClearTransactions())
	assert.Empty(t, s.LoadTransactions())
}

func TestRulesRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	assert.Empty(t, s.LoadRules())

	rules := []models.CategoryRule{
		{ID: "rule-01", Pattern: `\bcoffee\b`, Category: "Eating Out", Priority: 10, Enabled: true},
	}
	require.NoError(t, s.SaveRules(rules))
	assert.Equal(t, rules, s.LoadRules())
}
