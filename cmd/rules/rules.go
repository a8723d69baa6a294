// Package rules handles the category-rule management command
package rules

import (
	"fmt"

	"finsight/cmd/root"
	"finsight/internal/categorizer"

	"github.com/spf13/cobra"
)

var (
	seed  bool
	reset bool
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List, seed or reset the category rules",
	Long: `List the active category rules in evaluation order. With --seed,
persist the built-in defaults if no rules are stored yet. With --reset,
replace the stored rule set with the built-in defaults.`,
	Run: rulesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&seed, "seed", false, "Persist built-in defaults when no rules are stored")
	Cmd.Flags().BoolVar(&reset, "reset", false, "Replace stored rules with the built-in defaults")
}

func rulesFunc(cmd *cobra.Command, args []string) {
	st := root.NewStore()

	if reset {
		if err := st.SaveRules(categorizer.DefaultRules()); err != nil {
			root.Log.Fatalf("Error saving rules: %v", err)
		}
		fmt.Println("Rules reset to built-in defaults.")
		return
	}

	if seed {
		if existing := st.LoadRules(); len(existing) > 0 {
			fmt.Printf("Rule store already has %d rule(s); not seeding.\n", len(existing))
			return
		}
		if err := st.SaveRules(categorizer.DefaultRules()); err != nil {
			root.Log.Fatalf("Error saving rules: %v", err)
		}
		fmt.Println("Seeded built-in default rules.")
		return
	}

	rules := st.LoadRules()
	if len(rules) == 0 {
		rules = categorizer.DefaultRules()
		fmt.Println("No stored rules; showing built-in defaults.")
	}

	for _, r := range rules {
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		fmt.Printf("  %-10s prio %3d  %-16s %-9s %s\n", r.ID, r.Priority, r.Category, state, r.Pattern)
	}
}
