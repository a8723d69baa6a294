package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellAmount(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError bool
	}{
		{"plain integer", "50", "50", false},
		{"plain decimal", "50.25", "50.25", false},
		{"negative", "-50.00", "-50", false},
		{"currency symbol", "$1234.56", "1234.56", false},
		{"thousands commas", "1,234.56", "1234.56", false},
		{"pound with spaces", " £ 20 ", "20", false},
		{"parentheses negate", "(50.00)", "-50", false},
		{"parentheses with symbol", "($1,000)", "-1000", false},
		{"scientific notation rejected", "1e5", "", true},
		{"infinity rejected", "Infinity", "", true},
		{"stray text rejected", "12abc", "", true},
		{"double sign rejected", "--5", "", true},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseCellAmount(tc.input)
			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount.String())
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("$1,234.56"))
	assert.Equal(t, "(500)", StandardizeAmount("(€500)"))
	assert.Equal(t, "-99", StandardizeAmount("- 99"))
}
