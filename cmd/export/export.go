// Package export handles the transaction export command
package export

import (
	"fmt"
	"os"

	"finsight/cmd/root"
	"finsight/internal/analytics"
	"finsight/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to CSV or JSON",
	Long: `Export the stored transactions, optionally restricted to an inclusive
date range. CSV output neutralizes spreadsheet formula characters; JSON output
omits internal ids and import timestamps.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.SharedFlags.Format, "format", "csv", "Output format: csv or json")
	Cmd.Flags().StringVar(&root.SharedFlags.From, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	Cmd.Flags().StringVar(&root.SharedFlags.To, "to", "", "End date (YYYY-MM-DD, inclusive)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	transactions := root.NewStore().LoadTransactions()
	transactions = analytics.FilterByDateRange(transactions, root.SharedFlags.From, root.SharedFlags.To)

	var out string
	var err error
	switch root.SharedFlags.Format {
	case "csv":
		out, err = export.ToCSV(transactions)
	case "json":
		out, err = export.ToJSON(transactions)
	default:
		root.Log.Fatalf("Unknown export format: %s (must be 'csv' or 'json')", root.SharedFlags.Format)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(out)
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, []byte(out+"\n"), 0640); err != nil {
		root.Log.Fatalf("Error writing output file: %v", err)
	}
	fmt.Printf("Exported %d transaction(s) to %s.\n", len(transactions), root.SharedFlags.Output)
}
