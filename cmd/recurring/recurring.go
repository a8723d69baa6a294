// Package recurring handles the recurring-payment detection command
package recurring

import (
	"fmt"

	"finsight/cmd/root"
	"finsight/internal/recurring"

	"github.com/spf13/cobra"
)

// Cmd represents the recurring command
var Cmd = &cobra.Command{
	Use:   "recurring",
	Short: "Detect recurring payments",
	Long: `Group stored expenses by merchant and report groups that charge on a
regular cadence or with consistent amounts.`,
	Run: recurringFunc,
}

func recurringFunc(cmd *cobra.Command, args []string) {
	transactions := root.NewStore().LoadTransactions()
	payments := recurring.Detect(transactions)

	if len(payments) == 0 {
		fmt.Println("No recurring payments detected.")
		return
	}

	fmt.Println("Recurring payments:")
	for _, p := range payments {
		fmt.Printf("  %-30s %-12s $%10.2f  x%d  last %s\n",
			p.Merchant, p.Cadence, p.AvgAmount, p.Count, p.LastDate)
	}
}
