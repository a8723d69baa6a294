package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "id-1",
			TxnDate:     "2025-01-15",
			Description: `Woolworths "Town Hall"`,
			Amount:      -54.20,
			Merchant:    "woolworths town hall",
			Category:    "Groceries",
			Source:      "statement.csv",
			ImportedAt:  "2025-02-01T00:00:00Z",
		},
	}
}

func TestToCSVHeader(t *testing.T) {
	out, err := ToCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Date,Description,Amount,Merchant,Category,Source", out)
}

func TestToCSVRoundTrip(t *testing.T) {
	out, err := ToCSV(sample())
	require.NoError(t, err)
	assert.Contains(t, out, `"Woolworths ""Town Hall"""`)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Date", "Description", "Amount", "Merchant", "Category", "Source"}, records[0])
	assert.Equal(t, `Woolworths "Town Hall"`, records[1][1])
	assert.Equal(t, "-54.20", records[1][2])
}

func TestToCSVNeutralizesFormulas(t *testing.T) {
	txns := sample()
	txns[0].Description = "=SUM(A1:A9)"
	txns[0].Merchant = "@merchant"

	out, err := ToCSV(txns)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "'=SUM(A1:A9)", records[1][1])
	assert.Equal(t, "-54.20", records[1][2]) // amount keeps its sign
	assert.Equal(t, "'@merchant", records[1][3])
}

func TestToJSONOmitsInternalFields(t *testing.T) {
	out, err := ToJSON(sample())
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)

	assert.Equal(t, "2025-01-15", rows[0]["date"])
	assert.Equal(t, -54.20, rows[0]["amount"])
	assert.NotContains(t, rows[0], "id")
	assert.NotContains(t, rows[0], "importedAt")
}

func TestToJSONEmpty(t *testing.T) {
	out, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
