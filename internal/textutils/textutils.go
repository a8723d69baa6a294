// Package textutils provides text normalization helpers for descriptions,
// merchant names and source labels.
package textutils

import (
	"regexp"
	"strings"

	"finsight/internal/models"
)

const (
	merchantMaxLen = 60
	sourceMaxLen   = 100
)

var (
	digitPattern      = regexp.MustCompile(`\d+`)
	symbolPattern     = regexp.MustCompile(`[*#]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	sourcePattern     = regexp.MustCompile(`[^a-zA-Z0-9._\-\s]`)
)

// SanitizeCell neutralizes spreadsheet formula injection in an imported cell.
// Leading '=', '+', '@', tab and carriage-return characters are stripped
// repeatedly until the first remaining character is safe. A leading '-' is
// kept: negative amounts and dashes are common in descriptions.
func SanitizeCell(value string) string {
	result := value
	for len(result) > 0 {
		switch result[0] {
		case '=', '+', '@', '\t', '\r':
			result = result[1:]
		default:
			return strings.TrimSpace(result)
		}
	}
	return strings.TrimSpace(result)
}

// ExtractMerchant derives a merchant grouping key from a description:
// lowercased, digits and card-slip noise ('*', '#') removed, whitespace
// collapsed, capped at 60 characters. An empty derivation falls back to the
// literal "unknown merchant" so grouping keys are never blank.
func ExtractMerchant(description string) string {
	merchant := strings.ToLower(description)
	merchant = digitPattern.ReplaceAllString(merchant, "")
	merchant = symbolPattern.ReplaceAllString(merchant, "")
	merchant = whitespacePattern.ReplaceAllString(merchant, " ")
	merchant = strings.TrimSpace(merchant)
	if merchant == "" {
		return models.UnknownMerchant
	}
	return truncate(merchant, merchantMaxLen)
}

// SanitizeSourceName restricts an originating file name to a safe character
// set (alphanumerics, dot, underscore, dash, space) and caps it at 100
// characters. Anything else becomes '_'.
func SanitizeSourceName(source string) string {
	return truncate(sourcePattern.ReplaceAllString(source, "_"), sourceMaxLen)
}

// truncate caps a string at max characters, counting runes not bytes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
