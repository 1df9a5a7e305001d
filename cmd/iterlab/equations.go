package main

import (
	"encoding/json"

	"github.com/aretw0/iterlab/internal/cli"
	"github.com/aretw0/iterlab/internal/presentation/table"
	"github.com/spf13/cobra"
)

// equationsCmd represents the equations command
var equationsCmd = &cobra.Command{
	Use:   "equations",
	Short: "List the registered equations and the sample system",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		printer, err := newPrinter(cmd, format, false)
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if format == cli.FormatJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.lab.Equations())
		}
		return printer.Markdown(table.Samples(a.lab.Equations()))
	},
}

func init() {
	rootCmd.AddCommand(equationsCmd)

	equationsCmd.Flags().String("format", "markdown", "Output format: markdown or json")
}
