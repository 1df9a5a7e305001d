package main

import (
	"github.com/aretw0/iterlab/internal/cli"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/spf13/cobra"
)

// jacobiCmd represents the jacobi command
var jacobiCmd = &cobra.Command{
	Use:   "jacobi",
	Short: "Solve a linear system with the Jacobi method",
	Long: `Runs the Jacobi method on a square system. Without --matrix and --rhs it
solves the sample system 4x+y+z=100, x+5y+z=90, x+y+6z=120.`,
	Example: `  iterlab jacobi
  iterlab jacobi --matrix "4,1,1;1,5,1;1,1,6" --rhs "100,90,120" --tol 0.001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		charts, _ := cmd.Flags().GetBool("charts")
		printer, err := newPrinter(cmd, format, charts)
		if err != nil {
			return err
		}

		req := domain.JacobiRequest{
			Tolerance:     floatFlag(cmd, "tol"),
			MaxIterations: intFlag(cmd, "max-iter"),
		}
		if m, _ := cmd.Flags().GetString("matrix"); m != "" {
			if req.Matrix, err = cli.ParseMatrix(m); err != nil {
				return err
			}
		}
		if b, _ := cmd.Flags().GetString("rhs"); b != "" {
			if req.RHS, err = cli.ParseVector(b); err != nil {
				return err
			}
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.lab.Jacobi(cmd.Context(), req)
		if err != nil {
			return err
		}

		var exact []float64
		if withExact, _ := cmd.Flags().GetBool("exact"); withExact {
			norm := req.Normalize()
			if exact, err = solver.Direct(norm.Matrix, norm.RHS); err != nil {
				a.logger.Warn("direct solve failed", "err", err)
			}
		}
		return printer.Linear(res, exact)
	},
}

func init() {
	rootCmd.AddCommand(jacobiCmd)

	jacobiCmd.Flags().String("matrix", "", `Coefficient rows separated by ';', e.g. "4,1,1;1,5,1;1,1,6"`)
	jacobiCmd.Flags().String("rhs", "", `Right-hand side, e.g. "100,90,120"`)
	jacobiCmd.Flags().Float64("tol", domain.DefaultJacobiTolerance, "Stop when the max change < tol")
	jacobiCmd.Flags().Int("max-iter", domain.DefaultJacobiMaxIter, "Iteration cap")
	jacobiCmd.Flags().String("format", "markdown", "Output format: markdown, json or chart")
	jacobiCmd.Flags().Bool("charts", false, "Append a Mermaid chart to markdown output")
	jacobiCmd.Flags().Bool("exact", true, "Compare against a direct LU solution")
}
