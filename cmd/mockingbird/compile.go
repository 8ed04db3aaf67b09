package main

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/mockingbird/internal/cli"
	"github.com/zoobzio/mockingbird/querydef"
)

func newCompileCmd() *cobra.Command {
	var dialect, output string

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile query definitions",
		Long: `Compile query definitions to SQL and bound values.

The input is a YAML or JSON file holding one or more definitions separated by
"---". Without a file argument the definitions are read from stdin.`,
		Example: `  # Compile for the configured dialect
  mockingbird compile queries.yaml

  # Compile for Oracle and print JSON
  mockingbird compile queries.yaml --dialect oracle --output json

  # Read from stdin
  cat queries.yaml | mockingbird compile -d postgres`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(cmd.ErrOrStderr(), verbose, quiet)

			name := resolveString(dialect, cfg.Dialect)
			d, err := cli.LookupDialect(name)
			if err != nil {
				return cli.ConfigError("selecting dialect", err)
			}
			format := resolveString(output, cfg.Output)

			var defs []*querydef.Definition
			if len(args) == 1 {
				logger.Info("loading definitions", "file", args[0])
				defs, err = querydef.LoadFile(args[0])
			} else {
				logger.Info("reading definitions from stdin")
				defs, err = querydef.ParseAll(cmd.InOrStdin())
			}
			if err != nil {
				return cli.DefinitionError("reading definitions", err)
			}
			if len(defs) == 0 {
				logger.Warn("no query definitions found")
				return nil
			}

			compiled, err := cli.CompileDefinitions(defs, d, logger)
			if err != nil {
				return err
			}
			logger.Info("compiled definitions", "count", len(compiled), "dialect", d.Name())

			if err := cli.WriteCompiled(cmd.OutOrStdout(), format, compiled); err != nil {
				return cli.GeneralError("writing output", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialect, "dialect", "d", "", "target dialect (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: yaml or json (default from config)")
	return cmd
}
