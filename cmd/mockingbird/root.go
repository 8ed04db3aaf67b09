package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mockingbird/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mockingbird",
		Short: "Compile query definitions to dialect SQL",
		Long: `mockingbird - SELECT and UNION query compiler

Mockingbird reads query definitions written in YAML or JSON and compiles them
to parameterized SQL for MySQL, PostgreSQL, SQLite, SQL Server or Oracle.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help/completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			var err error
			cfg, configPath, err = cli.LoadConfig(cfgFile)
			if err != nil {
				return cli.ConfigError("loading configuration", err)
			}
			return nil
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover mockingbird.yaml)")
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	cmd.AddCommand(newCompileCmd(), newDialectsCmd(), newConfigCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ReportError(os.Stderr, err))
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
