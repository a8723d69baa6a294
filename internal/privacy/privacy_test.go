package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactAccountNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"twelve digit account", "TRANSFER TO 123456789012", "TRANSFER TO ****9012"},
		{"eight digit account", "ACCT 12345678", "ACCT ****5678"},
		{"formatted pair", "CARD 1234-5678", "CARD ****5678"},
		{"spaced pair", "CARD 1234 5678", "CARD ****5678"},
		{"four digits untouched", "REF 1234", "REF 1234"},
		{"decimal amount untouched", "PAID 1234.56", "PAID 1234.56"},
		{"no digits", "COFFEE SHOP", "COFFEE SHOP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RedactAccountNumbers(tc.input))
		})
	}
}

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"email replaced", "PAYPAL john.doe@example.com", "PAYPAL [email]"},
		{"email and account", "FROM jane@bank.co 987654321", "FROM [email] ****4321"},
		{"plain description", "WOOLWORTHS SYDNEY", "WOOLWORTHS SYDNEY"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeDescription(tc.input))
		})
	}
}
