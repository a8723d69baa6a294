// Package currencyutils provides amount parsing for statement cells.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Currency symbols, thousands commas and whitespace carry no value.
	symbolPattern = regexp.MustCompile(`[$£€¥₹₽₩₪,\s]`)

	// Strict signed-decimal grammar. Scientific notation, "Infinity" and any
	// stray text are rejected rather than coerced.
	amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

	parenPattern = regexp.MustCompile(`^\((.+)\)$`)
)

// ParseCellAmount parses a raw amount cell into a decimal value.
// Surrounding parentheses mean negation, the accountants' convention.
// An empty cell is an error; callers decide whether that skips the row.
func ParseCellAmount(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	cleaned := StandardizeAmount(trimmed)

	negate := false
	if m := parenPattern.FindStringSubmatch(cleaned); m != nil {
		negate = true
		cleaned = m[1]
	}

	if !amountPattern.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", value)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", value, err)
	}

	if negate {
		amount = amount.Abs().Neg()
	}
	return amount, nil
}

// StandardizeAmount strips currency symbols, thousands commas and whitespace
// from an amount string, leaving the numeric core (and any parentheses).
func StandardizeAmount(amountStr string) string {
	return symbolPattern.ReplaceAllString(amountStr, "")
}
