// Package clear handles the collection-clearing command
package clear

import (
	"fmt"

	"finsight/cmd/root"

	"github.com/spf13/cobra"
)

var yes bool

// Cmd represents the clear command
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored transactions",
	Long:  `Delete every stored transaction. Rules are kept. Requires --yes.`,
	Run:   clearFunc,
}

func init() {
	Cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
}

func clearFunc(cmd *cobra.Command, args []string) {
	if !yes {
		fmt.Println("Refusing to clear without --yes.")
		return
	}
	if err := root.NewStore().ClearTransactions(); err != nil {
		root.Log.Fatalf("Error clearing transactions: %v", err)
	}
	fmt.Println("All transactions cleared.")
}
