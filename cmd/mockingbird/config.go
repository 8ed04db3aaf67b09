package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newConfigCmd() *cobra.Command {
	var showSource bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
		Example: `  # Show effective configuration
  mockingbird config show

  # Show configuration with source file path
  mockingbird config show --source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if showSource {
				if configPath != "" {
					fmt.Fprintf(w, "Config file: %s\n\n", configPath)
				} else {
					fmt.Fprint(w, "Config file: (none, using defaults)\n\n")
				}
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
	showCmd.Flags().BoolVar(&showSource, "source", false, "show config file source")

	configCmd.AddCommand(showCmd)
	return configCmd
}
