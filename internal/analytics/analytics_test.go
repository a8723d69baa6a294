package analytics

import (
	"fmt"
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id, date string, amount float64, category string) models.Transaction {
	return models.Transaction{
		ID:          id,
		TxnDate:     date,
		Description: "desc " + id,
		Amount:      amount,
		Merchant:    "merchant " + id,
		Category:    category,
	}
}

func TestFilterByDateRange(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-10", -10, "A"),
		txn("2", "2025-01-15", -10, "A"),
		txn("3", "2025-01-20", -10, "A"),
	}

	tests := []struct {
		name     string
		from, to string
		expected int
	}{
		{"open range", "", "", 3},
		{"inclusive bounds", "2025-01-10", "2025-01-20", 3},
		{"lower bound only", "2025-01-15", "", 2},
		{"upper bound only", "", "2025-01-15", 2},
		{"narrow", "2025-01-11", "2025-01-19", 1},
		{"empty result", "2025-02-01", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, FilterByDateRange(transactions, tc.from, tc.to), tc.expected)
		})
	}
}

func TestComputeCashflowEmpty(t *testing.T) {
	metrics := ComputeCashflow(nil)
	assert.Equal(t, models.CashflowMetrics{}, metrics)
}

func TestComputeCashflow(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", 2500.00, "Income"),
		txn("2", "2025-01-05", -54.20, "Groceries"),
		txn("3", "2025-01-10", -15.99, "Subscriptions"),
		txn("4", "2025-01-10", 0, "Transfers"), // contributes to neither side
	}

	metrics := ComputeCashflow(transactions)
	assert.Equal(t, 2500.00, metrics.IncomeTotal)
	assert.Equal(t, 70.19, metrics.ExpenseTotal)
	assert.Equal(t, 2429.81, metrics.NetTotal)
	assert.Equal(t, "2025-01-01", metrics.PeriodStart)
	assert.Equal(t, "2025-01-10", metrics.PeriodEnd)
	assert.Equal(t, 4, metrics.TransactionCount)
	// 10 inclusive days in the period.
	assert.InDelta(t, 7.02, metrics.AvgDailySpend, 0.001)
}

func TestComputeCashflowSingleDay(t *testing.T) {
	metrics := ComputeCashflow([]models.Transaction{txn("1", "2025-01-01", -30, "A")})
	assert.Equal(t, 30.0, metrics.AvgDailySpend)
}

func TestComputeCategoryBreakdown(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", -75, "Groceries"),
		txn("2", "2025-01-02", -25, "Transport"),
		txn("3", "2025-01-03", 500, "Income"), // income excluded
	}

	breakdown := ComputeCategoryBreakdown(transactions)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Groceries", breakdown[0].Category)
	assert.Equal(t, 75.0, breakdown[0].Total)
	assert.Equal(t, 75.0, breakdown[0].Percentage)
	assert.Equal(t, "Transport", breakdown[1].Category)
	assert.Equal(t, 25.0, breakdown[1].Percentage)

	var percentageSum float64
	for _, entry := range breakdown {
		percentageSum += entry.Percentage
	}
	assert.InDelta(t, 100.0, percentageSum, 0.02)
}

func TestComputeCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, ComputeCategoryBreakdown(nil))
	assert.Empty(t, ComputeCategoryBreakdown([]models.Transaction{txn("1", "2025-01-01", 100, "Income")}))
	assert.Empty(t, ComputeMerchantBreakdown(nil))
}

func TestComputeMerchantBreakdown(t *testing.T) {
	a := txn("1", "2025-01-01", -10, "A")
	a.Merchant = "spotify"
	b := txn("2", "2025-01-02", -20, "A")
	b.Merchant = "spotify"
	c := txn("3", "2025-01-03", -5, "A")
	c.Merchant = ""
	c.Description = "MYSTERY VENDOR"

	breakdown := ComputeMerchantBreakdown([]models.Transaction{a, b, c})
	require.Len(t, breakdown, 2)
	assert.Equal(t, "spotify", breakdown[0].Merchant)
	assert.Equal(t, 30.0, breakdown[0].Total)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.Equal(t, "MYSTERY VENDOR", breakdown[1].Merchant)
}

func TestComputeDailySpend(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-02", -20, "A"),
		txn("2", "2025-01-01", 100, "A"),
		txn("3", "2025-01-01", -30, "A"),
	}

	daily := ComputeDailySpend(transactions)
	require.Len(t, daily, 2)
	assert.Equal(t, "2025-01-01", daily[0].Date)
	assert.Equal(t, 100.0, daily[0].Income)
	assert.Equal(t, 30.0, daily[0].Expense)
	assert.Equal(t, 70.0, daily[0].Net)
	assert.Equal(t, "2025-01-02", daily[1].Date)
}

func TestComputeMonthlyTrends(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-02-10", -20, "A"),
		txn("2", "2025-01-15", 100, "A"),
		txn("3", "2025-01-20", -40, "A"),
	}

	trends := ComputeMonthlyTrends(transactions)
	require.Len(t, trends, 2)
	assert.Equal(t, "2025-01", trends[0].Month)
	assert.Equal(t, 100.0, trends[0].Income)
	assert.Equal(t, 40.0, trends[0].Expense)
	assert.Equal(t, 60.0, trends[0].Net)
	assert.Equal(t, "2025-02", trends[1].Month)
}

func TestDetectAnomaliesNeedsMinimumExpenses(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", -10, "A"),
		txn("2", "2025-01-02", -10, "A"),
		txn("3", "2025-01-03", -10, "A"),
		txn("4", "2025-01-04", -500, "A"),
	}
	assert.Empty(t, DetectAnomalies(transactions))
}

func TestDetectAnomalies(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", -50, "Groceries"),
		txn("2", "2025-01-04", -55, "Groceries"),
		txn("3", "2025-01-08", -52, "Groceries"),
		txn("4", "2025-01-12", -48, "Groceries"),
		txn("5", "2025-01-15", -51, "Groceries"),
		txn("6", "2025-01-19", -49, "Groceries"),
		txn("7", "2025-01-22", -53, "Groceries"),
		txn("8", "2025-01-26", -47, "Groceries"),
		txn("9", "2025-01-29", -600, "Groceries"),
	}

	anomalies := DetectAnomalies(transactions)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "2025-01-29", anomalies[0].Date)
	assert.Equal(t, 600.0, anomalies[0].Amount)
	assert.Contains(t, anomalies[0].Reason, "Unusually high for Groceries")
}

func TestDetectAnomaliesSkipsSmallCategories(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", -50, "Groceries"),
		txn("2", "2025-01-08", -55, "Groceries"),
		txn("3", "2025-01-15", -52, "Groceries"),
		// Only two entries: no statistics for this category.
		txn("4", "2025-01-20", -10, "Other"),
		txn("5", "2025-01-21", -900, "Other"),
	}
	assert.Empty(t, DetectAnomalies(transactions))
}

func TestDetectAnomaliesCapsAtTwenty(t *testing.T) {
	baseline := []float64{50, 55, 52, 48, 51, 49, 53, 47}

	var transactions []models.Transaction
	id := 0
	for c := 0; c < 22; c++ {
		category := fmt.Sprintf("cat-%02d", c)
		for _, amount := range baseline {
			id++
			transactions = append(transactions, txn(fmt.Sprintf("t%03d", id), "2025-01-10", -amount, category))
		}
		id++
		transactions = append(transactions, txn(fmt.Sprintf("t%03d", id), "2025-01-29", float64(-(600+c)), category))
	}

	anomalies := DetectAnomalies(transactions)
	require.Len(t, anomalies, 20)
	assert.Equal(t, 621.0, anomalies[0].Amount)
	for i := 1; i < len(anomalies); i++ {
		assert.GreaterOrEqual(t, anomalies[i-1].Amount, anomalies[i].Amount)
	}
}

func TestDetectAnomaliesDeduplicatesById(t *testing.T) {
	var transactions []models.Transaction
	for i := 0; i < 10; i++ {
		transactions = append(transactions, txn(fmt.Sprintf("b%d", i), "2025-01-10", float64(-(45+i)), "Groceries"))
	}
	// The same record appearing twice must yield a single entry.
	outlier := txn("dup", "2025-01-29", -600, "Groceries")
	transactions = append(transactions, outlier, outlier)

	anomalies := DetectAnomalies(transactions)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 600.0, anomalies[0].Amount)
}

func TestDetectAnomaliesIdenticalAmounts(t *testing.T) {
	transactions := []models.Transaction{
		txn("1", "2025-01-01", -15.99, "Subscriptions"),
		txn("2", "2025-02-01", -15.99, "Subscriptions"),
		txn("3", "2025-03-01", -15.99, "Subscriptions"),
		txn("4", "2025-04-01", -15.99, "Subscriptions"),
		txn("5", "2025-05-01", -15.99, "Subscriptions"),
	}
	// Zero deviation must never flag anything.
	assert.Empty(t, DetectAnomalies(transactions))
}
