package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency aggregation accumulates in integer minor units (cents) and only
// converts to a rounded decimal at the boundary. This keeps long additions
// free of floating-point drift.

// Cents converts a float amount to integer cents, rounding half away from zero.
func Cents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CentsAbs converts a float amount to the absolute value in integer cents.
func CentsAbs(amount float64) int64 {
	c := Cents(amount)
	if c < 0 {
		return -c
	}
	return c
}

// FromCents converts integer cents back to a 2-decimal float amount.
func FromCents(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

// Round2 rounds a float to 2 decimal places. Negative zero becomes zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	if f == 0 {
		return 0
	}
	return f
}

// FormatAmount renders an amount with exactly two decimal places, the fixed
// formatting used in CSV export and dedup keys.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
