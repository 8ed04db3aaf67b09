package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mockingbird/internal/cli"
)

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List available dialects and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range cli.DialectNames() {
				marker := " "
				if name == cfg.Dialect {
					marker = "*"
				}
				d, err := cli.LookupDialect(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s %-8s %s\n", marker, name, cli.DescribeDialect(d)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
