package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/iterlab/internal/cli"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/schema"
	"github.com/spf13/cobra"
)

// batchOutcome is one entry of the JSON batch report.
type batchOutcome struct {
	Name   string         `json:"name"`
	Record *domain.Record `json:"record,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [problems-file]",
	Short: "Solve every problem listed in a YAML or JSON file",
	Long: `Reads a problem set and solves each entry in order. Failures are reported
per problem; the command exits non-zero when at least one problem failed.

Example file:

  problems:
    - name: cubic
      method: false_position
      equation: cubic
      a: 1
      b: 2
    - name: sample
      method: jacobi
      tolerance: 0.001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		charts, _ := cmd.Flags().GetBool("charts")
		printer, err := newPrinter(cmd, format, charts)
		if err != nil {
			return err
		}

		set, err := schema.LoadProblems(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		outcomes := make([]batchOutcome, 0, len(set.Problems))
		failed := 0
		for _, p := range set.Problems {
			rec, err := a.lab.Solve(cmd.Context(), p)
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			out := batchOutcome{Name: p.Name, Record: rec}
			if err != nil {
				failed++
				out.Error = err.Error()
				a.logger.Warn("problem failed", "name", p.Name, "err", err)
			}
			outcomes = append(outcomes, out)
		}

		if format == cli.FormatJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(outcomes); err != nil {
				return err
			}
		} else if err := printOutcomes(cmd.OutOrStdout(), printer, outcomes); err != nil {
			return err
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d problems failed", failed, len(outcomes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("format", "markdown", "Output format: markdown, json or chart")
	batchCmd.Flags().Bool("charts", false, "Append a Mermaid chart to markdown output")
}

func printOutcomes(w io.Writer, printer *cli.Printer, outcomes []batchOutcome) error {
	for _, out := range outcomes {
		fmt.Fprintf(w, "## %s\n\n", out.Name)
		if out.Error != "" {
			fmt.Fprintf(w, "Error: %s\n\n", out.Error)
			continue
		}

		var err error
		switch out.Record.Method {
		case domain.MethodFalsePosition:
			err = printer.Root(out.Record.Root)
		case domain.MethodJacobi:
			err = printer.Linear(out.Record.Linear, nil)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
