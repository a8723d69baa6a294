// Package privacy redacts account-number-like sequences and email addresses
// from transaction descriptions before they are persisted.
package privacy

import (
	"regexp"
	"strings"
)

var (
	accountNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{8,16}\b`),       // generic numeric sequences
		regexp.MustCompile(`\b\d{3,4}[-\s]\d{4}\b`), // formatted account numbers
	}

	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	separatorPattern = regexp.MustCompile(`[-\s]`)
)

// RedactAccountNumbers replaces account-number-like digit runs with **** plus
// the last four digits. Spans containing a decimal point are left alone (they
// are almost certainly amounts), as are spans of four or fewer significant
// digits once separators are removed.
func RedactAccountNumbers(text string) string {
	result := text
	for _, pattern := range accountNumberPatterns {
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			if strings.Contains(match, ".") {
				return match
			}
			digitsOnly := separatorPattern.ReplaceAllString(match, "")
			if len(digitsOnly) <= 4 {
				return match
			}
			return "****" + digitsOnly[len(digitsOnly)-4:]
		})
	}
	return result
}

// SanitizeDescription prepares a description for storage and display:
// email addresses become the literal token "[email]", then account numbers
// are redacted.
func SanitizeDescription(description string) string {
	result := emailPattern.ReplaceAllString(description, "[email]")
	return RedactAccountNumbers(result)
}
