// Package analytics derives presentation views from a transaction collection.
// Every function is pure and total: it takes plain data, never errors, and
// expresses "no data" as zero values or empty slices. Currency is accumulated
// in integer cents and rounded only at the boundary.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"finsight/internal/dateutils"
	"finsight/internal/models"
)

// FilterByDateRange restricts transactions to an inclusive [start, end] date
// range. Empty bounds are open-ended. String comparison is valid because
// txnDate is fixed-width ISO.
func FilterByDateRange(transactions []models.Transaction, start, end string) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if start != "" && txn.TxnDate < start {
			continue
		}
		if end != "" && txn.TxnDate > end {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// ComputeCashflow summarizes income, spending and the daily spend rate over
// the period spanned by the collection. Zero-amount transactions contribute
// to neither side. The empty collection yields all-zero metrics.
func ComputeCashflow(transactions []models.Transaction) models.CashflowMetrics {
	if len(transactions) == 0 {
		return models.CashflowMetrics{}
	}

	var incomeCents, expenseCents int64
	periodStart := transactions[0].TxnDate
	periodEnd := transactions[0].TxnDate

	for _, txn := range transactions {
		if txn.IsIncome() {
			incomeCents += models.Cents(txn.Amount)
		} else if txn.IsExpense() {
			expenseCents += models.CentsAbs(txn.Amount)
		}
		if txn.TxnDate < periodStart {
			periodStart = txn.TxnDate
		}
		if txn.TxnDate > periodEnd {
			periodEnd = txn.TxnDate
		}
	}

	days := dateutils.DaysBetween(periodStart, periodEnd) + 1
	if days < 1 {
		days = 1
	}

	incomeTotal := models.FromCents(incomeCents)
	expenseTotal := models.FromCents(expenseCents)

	return models.CashflowMetrics{
		IncomeTotal:      incomeTotal,
		ExpenseTotal:     expenseTotal,
		NetTotal:         models.Round2(incomeTotal - expenseTotal),
		AvgDailySpend:    models.Round2(expenseTotal / float64(days)),
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		TransactionCount: len(transactions),
	}
}

type bucket struct {
	cents int64
	count int
}

// ComputeCategoryBreakdown groups expenses by category. Percentages are
// relative to total expenses and sum to 100 within rounding.
func ComputeCategoryBreakdown(transactions []models.Transaction) []models.CategoryBreakdown {
	var totalCents int64
	buckets := make(map[string]*bucket)

	for _, txn := range transactions {
		if !txn.IsExpense() {
			continue
		}
		cents := models.CentsAbs(txn.Amount)
		totalCents += cents
		b, ok := buckets[txn.Category]
		if !ok {
			b = &bucket{}
			buckets[txn.Category] = b
		}
		b.cents += cents
		b.count++
	}

	result := make([]models.CategoryBreakdown, 0, len(buckets))
	for category, b := range buckets {
		result = append(result, models.CategoryBreakdown{
			Category:   category,
			Total:      models.FromCents(b.cents),
			Count:      b.count,
			Percentage: models.Round2(float64(b.cents) / float64(totalCents) * 100),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// ComputeMerchantBreakdown groups expenses by merchant, falling back to the
// description when the merchant key is blank.
func ComputeMerchantBreakdown(transactions []models.Transaction) []models.MerchantBreakdown {
	buckets := make(map[string]*bucket)

	for _, txn := range transactions {
		if !txn.IsExpense() {
			continue
		}
		key := txn.MerchantKey()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.cents += models.CentsAbs(txn.Amount)
		b.count++
	}

	result := make([]models.MerchantBreakdown, 0, len(buckets))
	for merchant, b := range buckets {
		result = append(result, models.MerchantBreakdown{
			Merchant: merchant,
			Total:    models.FromCents(b.cents),
			Count:    b.count,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

type flowBucket struct {
	incomeCents  int64
	expenseCents int64
}

func (b *flowBucket) add(amount float64) {
	if amount > 0 {
		b.incomeCents += models.Cents(amount)
	} else if amount < 0 {
		b.expenseCents += models.CentsAbs(amount)
	}
}

// ComputeDailySpend buckets income and expense per calendar day, ascending.
func ComputeDailySpend(transactions []models.Transaction) []models.DailySpend {
	buckets := make(map[string]*flowBucket)
	for _, txn := range transactions {
		b, ok := buckets[txn.TxnDate]
		if !ok {
			b = &flowBucket{}
			buckets[txn.TxnDate] = b
		}
		b.add(txn.Amount)
	}

	result := make([]models.DailySpend, 0, len(buckets))
	for date, b := range buckets {
		income := models.FromCents(b.incomeCents)
		expense := models.FromCents(b.expenseCents)
		result = append(result, models.DailySpend{
			Date:    date,
			Income:  income,
			Expense: expense,
			Net:     models.Round2(income - expense),
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// ComputeMonthlyTrends buckets income and expense per YYYY-MM month, ascending.
func ComputeMonthlyTrends(transactions []models.Transaction) []models.MonthlyTrend {
	buckets := make(map[string]*flowBucket)
	for _, txn := range transactions {
		month := dateutils.MonthOf(txn.TxnDate)
		b, ok := buckets[month]
		if !ok {
			b = &flowBucket{}
			buckets[month] = b
		}
		b.add(txn.Amount)
	}

	result := make([]models.MonthlyTrend, 0, len(buckets))
	for month, b := range buckets {
		income := models.FromCents(b.incomeCents)
		expense := models.FromCents(b.expenseCents)
		result = append(result, models.MonthlyTrend{
			Month:   month,
			Income:  income,
			Expense: expense,
			Net:     models.Round2(income - expense),
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result
}

// minExpensesForAnomalies is the floor below which no anomaly scoring runs;
// minCategorySample is the per-category floor for computing statistics.
const (
	minExpensesForAnomalies = 5
	minCategorySample       = 3
	maxAnomalies            = 20
)

type categoryStats struct {
	mean   float64
	stdDev float64
}

// DetectAnomalies flags expenses that sit more than two sample standard
// deviations above their category mean. Categories with fewer than three
// expenses are skipped, never flagged. Results are deduplicated by
// transaction id, sorted by amount descending and capped at 20.
func DetectAnomalies(transactions []models.Transaction) []models.AnomalyEntry {
	expenses := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.IsExpense() {
			expenses = append(expenses, txn)
		}
	}
	if len(expenses) < minExpensesForAnomalies {
		return []models.AnomalyEntry{}
	}

	amountsByCategory := make(map[string][]float64)
	for _, txn := range expenses {
		amountsByCategory[txn.Category] = append(amountsByCategory[txn.Category], math.Abs(txn.Amount))
	}

	statsByCategory := make(map[string]categoryStats)
	for category, amounts := range amountsByCategory {
		if len(amounts) < minCategorySample {
			continue
		}
		mean, stdDev := sampleStats(amounts)
		statsByCategory[category] = categoryStats{mean: mean, stdDev: stdDev}
	}

	anomalies := make([]models.AnomalyEntry, 0)
	seen := make(map[string]bool)

	for _, txn := range expenses {
		stats, ok := statsByCategory[txn.Category]
		if !ok {
			continue
		}
		absAmount := math.Abs(txn.Amount)
		if stats.stdDev <= 0 || absAmount <= stats.mean+2*stats.stdDev {
			continue
		}
		if seen[txn.ID] {
			continue
		}
		seen[txn.ID] = true

		anomalies = append(anomalies, models.AnomalyEntry{
			Date:     txn.TxnDate,
			Merchant: txn.MerchantKey(),
			Amount:   models.Round2(absAmount),
			Reason: fmt.Sprintf("Unusually high for %s (avg: $%.2f, this: $%.2f)",
				txn.Category, models.Round2(stats.mean), models.Round2(absAmount)),
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Amount > anomalies[j].Amount
	})
	if len(anomalies) > maxAnomalies {
		anomalies = anomalies[:maxAnomalies]
	}
	return anomalies
}

// sampleStats returns the mean and Bessel-corrected sample standard deviation.
func sampleStats(values []float64) (mean, stdDev float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n

	if len(values) < 2 {
		return mean, 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / (n - 1))
}
