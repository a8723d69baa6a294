// Package root contains the root command for the application
package root

import (
	"finsight/internal/categorizer"
	"finsight/internal/config"
	"finsight/internal/importer"
	"finsight/internal/logging"
	"finsight/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	From   string
	To     string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated before any
	// command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finsight",
		Short: "A CLI tool to import bank-statement CSV files and analyze personal spending.",
		Long: `finsight imports bank-statement CSV exports of varying schemas into a
normalized local collection, categorizes transactions with regex rules, and
derives cashflow, breakdown, trend, anomaly and recurring-payment views.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finsight!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Propagate the configured logger to all computation packages
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			importer.SetLogger(adapter)
			categorizer.SetLogger(adapter)
			store.SetLogger(adapter)
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// NewStore builds a store rooted at the configured data directory.
func NewStore() *store.Store {
	return store.New(Cfg.Data.Directory)
}
