package main

import (
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/spf13/cobra"
)

// falsiCmd represents the falsi command
var falsiCmd = &cobra.Command{
	Use:     "falsi",
	Aliases: []string{"false-position"},
	Short:   "Find a root with the False Position method",
	Long: `Runs False Position on a registered equation (see 'iterlab equations').
Omitted flags take the equation's bracket, tolerance 1e-6 and 100 iterations.`,
	Example: `  iterlab falsi --equation cubic --a 1 --b 2 --tol 1e-6
  iterlab falsi --equation cosine --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		charts, _ := cmd.Flags().GetBool("charts")
		printer, err := newPrinter(cmd, format, charts)
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		req := domain.FalsePositionRequest{}
		req.Equation, _ = cmd.Flags().GetString("equation")
		req.A = floatFlag(cmd, "a")
		req.B = floatFlag(cmd, "b")
		req.Tolerance = floatFlag(cmd, "tol")
		req.MaxIterations = intFlag(cmd, "max-iter")

		res, err := a.lab.FalsePosition(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printer.Root(res)
	},
}

func init() {
	rootCmd.AddCommand(falsiCmd)

	falsiCmd.Flags().String("equation", registry.DefaultEquation, "Equation name")
	falsiCmd.Flags().Float64("a", 0, "Left end of the bracket (default: the equation's)")
	falsiCmd.Flags().Float64("b", 0, "Right end of the bracket (default: the equation's)")
	falsiCmd.Flags().Float64("tol", domain.DefaultFalsePositionTolerance, "Stop when |f(c)| < tol")
	falsiCmd.Flags().Int("max-iter", domain.DefaultFalsePositionMaxIter, "Iteration cap")
	falsiCmd.Flags().String("format", "markdown", "Output format: markdown, json or chart")
	falsiCmd.Flags().Bool("charts", false, "Append a Mermaid chart to markdown output")
}

// floatFlag returns the flag value only when the user set it.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
