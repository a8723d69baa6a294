// Package recurring infers recurring payments from a transaction collection
// by grouping expenses per merchant and classifying the spacing between
// consecutive charges.
package recurring

import (
	"math"
	"sort"

	"finsight/internal/dateutils"
	"finsight/internal/models"
)

// minGroupSize is the smallest merchant group worth considering; two charges
// give a single gap and say nothing about cadence.
const minGroupSize = 3

// consistentCoV is the coefficient-of-variation ceiling under which a group's
// amounts count as consistent.
const consistentCoV = 0.3

// Cadence day-range buckets, inclusive.
var cadenceBuckets = []struct {
	cadence  models.Cadence
	min, max float64
}{
	{models.CadenceWeekly, 5, 9},
	{models.CadenceFortnightly, 12, 17},
	{models.CadenceMonthly, 25, 38},
	{models.CadenceQuarterly, 80, 100},
	{models.CadenceAnnual, 340, 400},
}

// Detect reports merchant groups that look like recurring payments: at least
// three expenses whose average spacing falls into a cadence bucket, or whose
// amounts are consistent (CoV < 0.3) even when the spacing does not classify.
// Output is ordered by cadence rank (weekly first, unknown last), then by
// average amount descending; the sort is stable.
func Detect(transactions []models.Transaction) []models.RecurringPayment {
	groups := make(map[string][]models.Transaction)
	var keys []string

	for _, txn := range transactions {
		if !txn.IsExpense() {
			continue
		}
		key := txn.MerchantKey()
		if key == "" {
			continue
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], txn)
	}

	recurring := make([]models.RecurringPayment, 0)

	for _, merchant := range keys {
		txns := groups[merchant]
		if len(txns) < minGroupSize {
			continue
		}

		sorted := make([]models.Transaction, len(txns))
		copy(sorted, txns)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TxnDate < sorted[j].TxnDate
		})

		avgDelta := averageGapDays(sorted)
		cadence := classifyCadence(avgDelta)

		var totalCents int64
		amounts := make([]float64, len(sorted))
		for i, t := range sorted {
			totalCents += models.CentsAbs(t.Amount)
			amounts[i] = math.Abs(t.Amount)
		}
		avgAmount := models.FromCents(int64(math.Round(float64(totalCents) / float64(len(sorted)))))

		consistent := variationCoefficient(amounts) < consistentCoV
		if cadence == models.CadenceUnknown && !consistent {
			continue
		}

		recurring = append(recurring, models.RecurringPayment{
			Merchant:  merchant,
			Cadence:   cadence,
			AvgAmount: avgAmount,
			Count:     len(sorted),
			LastDate:  sorted[len(sorted)-1].TxnDate,
		})
	}

	sort.SliceStable(recurring, func(i, j int) bool {
		ri, rj := recurring[i].Cadence.Rank(), recurring[j].Cadence.Rank()
		if ri != rj {
			return ri < rj
		}
		return recurring[i].AvgAmount > recurring[j].AvgAmount
	})
	return recurring
}

// averageGapDays returns the mean day count between consecutive transactions
// of a date-sorted group.
func averageGapDays(sorted []models.Transaction) float64 {
	var total int
	gaps := 0
	for i := 1; i < len(sorted); i++ {
		total += dateutils.DaysBetween(sorted[i-1].TxnDate, sorted[i].TxnDate)
		gaps++
	}
	if gaps == 0 {
		return 0
	}
	return float64(total) / float64(gaps)
}

func classifyCadence(avgDelta float64) models.Cadence {
	for _, b := range cadenceBuckets {
		if avgDelta >= b.min && avgDelta <= b.max {
			return b.cadence
		}
	}
	return models.CadenceUnknown
}

// variationCoefficient returns the sample standard deviation divided by the
// mean. Fewer than two values cannot be judged and yield +Inf; a zero mean
// yields 0.
func variationCoefficient(values []float64) float64 {
	if len(values) < 2 {
		return math.Inf(1)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq/float64(len(values)-1)) / mean
}
