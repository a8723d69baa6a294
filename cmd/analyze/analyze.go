// Package analyze handles the spending analysis command
package analyze

import (
	"fmt"

	"finsight/cmd/root"
	"finsight/internal/analytics"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze stored transactions",
	Long: `Compute cashflow metrics, category and merchant breakdowns, monthly
trends and spending anomalies over the stored transactions, optionally
restricted to an inclusive date range.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.SharedFlags.From, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	Cmd.Flags().StringVar(&root.SharedFlags.To, "to", "", "End date (YYYY-MM-DD, inclusive)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	transactions := root.NewStore().LoadTransactions()
	transactions = analytics.FilterByDateRange(transactions, root.SharedFlags.From, root.SharedFlags.To)

	if len(transactions) == 0 {
		fmt.Println("No transactions in the selected range.")
		return
	}

	cashflow := analytics.ComputeCashflow(transactions)
	fmt.Printf("Period:        %s to %s (%d transactions)\n",
		cashflow.PeriodStart, cashflow.PeriodEnd, cashflow.TransactionCount)
	fmt.Printf("Income:        $%.2f\n", cashflow.IncomeTotal)
	fmt.Printf("Expenses:      $%.2f\n", cashflow.ExpenseTotal)
	fmt.Printf("Net:           $%.2f\n", cashflow.NetTotal)
	fmt.Printf("Avg daily:     $%.2f\n", cashflow.AvgDailySpend)

	categories := analytics.ComputeCategoryBreakdown(transactions)
	if len(categories) > 0 {
		fmt.Println("\nSpending by category:")
		for _, c := range categories {
			fmt.Printf("  %-20s $%10.2f  %5.1f%%  (%d)\n", c.Category, c.Total, c.Percentage, c.Count)
		}
	}

	merchants := analytics.ComputeMerchantBreakdown(transactions)
	if len(merchants) > 0 {
		fmt.Println("\nTop merchants:")
		limit := len(merchants)
		if limit > 10 {
			limit = 10
		}
		for _, m := range merchants[:limit] {
			fmt.Printf("  %-30s $%10.2f  (%d)\n", m.Merchant, m.Total, m.Count)
		}
	}

	trends := analytics.ComputeMonthlyTrends(transactions)
	if len(trends) > 1 {
		fmt.Println("\nMonthly trend:")
		for _, t := range trends {
			fmt.Printf("  %s  income $%.2f  expense $%.2f  net $%.2f\n", t.Month, t.Income, t.Expense, t.Net)
		}
	}

	anomalies := analytics.DetectAnomalies(transactions)
	if len(anomalies) > 0 {
		fmt.Println("\nAnomalies:")
		for _, a := range anomalies {
			fmt.Printf("  %s  %-30s $%10.2f  %s\n", a.Date, a.Merchant, a.Amount, a.Reason)
		}
	}
}
