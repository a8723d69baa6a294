// Package importcsv handles the CSV import command
package importcsv

import (
	"fmt"
	"os"
	"path/filepath"

	"finsight/cmd/root"
	"finsight/internal/categorizer"
	"finsight/internal/importer"
	"finsight/internal/privacy"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a bank-statement CSV file",
	Long: `Import a bank-statement CSV file into the local transaction collection.
Columns are detected from the header, descriptions are sanitized and redacted,
and every imported transaction is categorized with the active rule set.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		root.Log.Fatal("No input file specified. Use --input or pass a file path.")
	}

	content, err := os.ReadFile(input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	delimiter := ','
	if d := root.Cfg.CSV.Delimiter; d != "" {
		delimiter = []rune(d)[0]
	}
	result := importer.ParseWithOptions(string(content), filepath.Base(input), root.Cfg.Import.MaxFileBytes, delimiter)

	for i := range result.Transactions {
		result.Transactions[i].Description = privacy.SanitizeDescription(result.Transactions[i].Description)
	}

	st := root.NewStore()
	rules := st.LoadRules()
	if len(rules) == 0 {
		rules = categorizer.DefaultRules()
		if err := st.SaveRules(rules); err != nil {
			root.Log.Warnf("Failed to save default rules: %v", err)
		}
	}
	result.Transactions = categorizer.Apply(result.Transactions, rules)

	total, err := st.AppendTransactions(result.Transactions)
	if err != nil {
		root.Log.Fatalf("Error saving transactions: %v", err)
	}

	for _, warning := range result.Warnings {
		fmt.Println("Warning:", warning)
	}
	fmt.Printf("Imported %d transaction(s) from %s (%d total in collection).\n", result.Count, input, total)
}
