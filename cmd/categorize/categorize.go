// Package categorize handles the re-categorization command
package categorize

import (
	"fmt"

	"finsight/cmd/root"
	"finsight/internal/categorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Re-categorize stored transactions, or test a single description",
	Long: `Re-apply the active rule set to every stored transaction. With a
description argument, print the category that description would receive
instead of touching the collection.`,
	Run: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	st := root.NewStore()
	rules := st.LoadRules()
	if len(rules) == 0 {
		rules = categorizer.DefaultRules()
	}

	if len(args) > 0 {
		category := categorizer.CategorizeDescription(args[0], rules)
		fmt.Printf("%s -> %s\n", args[0], category)
		return
	}

	transactions := st.LoadTransactions()
	if len(transactions) == 0 {
		fmt.Println("No transactions stored yet.")
		return
	}

	transactions = categorizer.Apply(transactions, rules)
	if err := st.SaveTransactions(transactions); err != nil {
		root.Log.Fatalf("Error saving transactions: %v", err)
	}
	fmt.Printf("Re-categorized %d transaction(s).\n", len(transactions))
}
