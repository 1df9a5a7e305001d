// Package table renders solver traces and summaries as markdown.
package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/aretw0/iterlab/pkg/solver"
)

// FalsePosition renders the iteration table of a root-finding trace.
func FalsePosition(res *domain.RootResult) string {
	var sb strings.Builder
	writeRow(&sb, "Iteration", "a", "b", "c", "f(a)", "f(b)", "f(c)")
	writeRule(&sb, 7)
	for _, s := range res.Trace {
		writeRow(&sb,
			fmt.Sprint(s.Index),
			f6(s.A), f6(s.B), f6(s.C),
			f6(s.FA), f6(s.FB), f6(s.FC),
		)
	}
	return sb.String()
}

// Jacobi renders the iteration table of a linear-system trace.
func Jacobi(res *domain.LinearResult) string {
	names := domain.ComponentNames(len(res.X))

	var sb strings.Builder
	header := append([]string{"Iteration"}, names...)
	writeRow(&sb, append(header, "Max Change")...)
	writeRule(&sb, len(names)+2)
	for _, s := range res.Trace {
		cells := []string{fmt.Sprint(s.Index)}
		for _, v := range s.X {
			cells = append(cells, f4(v))
		}
		writeRow(&sb, append(cells, f6(s.MaxChange))...)
	}
	return sb.String()
}

// RootSummary renders the final solution panel of a root-finding solve.
func RootSummary(res *domain.RootResult) string {
	var sb strings.Builder
	sb.WriteString("### Solution\n\n")
	if res.Equation != "" {
		fmt.Fprintf(&sb, "- **Equation:** `%s`\n", res.Equation)
	}
	fmt.Fprintf(&sb, "- **Root:** %s\n", f6(res.Root))
	if n := len(res.Trace); n > 0 {
		fmt.Fprintf(&sb, "- **f(root):** %.3e\n", res.Trace[n-1].FC)
	}
	sb.WriteString("- " + statusLine(res.Status, res.Iterations()) + "\n")
	return sb.String()
}

// LinearSummary renders the final solution panel of a Jacobi solve.
// exact, when non-nil, is a direct solution shown for comparison.
func LinearSummary(res *domain.LinearResult, exact []float64) string {
	names := domain.ComponentNames(len(res.X))

	var sb strings.Builder
	sb.WriteString("### Solution\n\n")
	for i, name := range names {
		fmt.Fprintf(&sb, "- **%s** = %s\n", name, f4(res.X[i]))
	}
	sb.WriteString("- " + statusLine(res.Status, res.Iterations()) + "\n")
	fmt.Fprintf(&sb, "- **Residual (max |b - Ax|):** %.3e\n", solver.MaxAbs(res.Residual))
	if !res.DiagonallyDominant {
		sb.WriteString("- **Warning:** the matrix is not strictly diagonally dominant; Jacobi may diverge.\n")
	}

	if exact != nil && len(exact) == len(res.X) {
		sb.WriteString("\n")
		writeRow(&sb, "Component", "Jacobi", "Exact", "Error")
		writeRule(&sb, 4)
		for i, name := range names {
			writeRow(&sb, name, f4(res.X[i]), f4(exact[i]), fmt.Sprintf("%.2e", math.Abs(res.X[i]-exact[i])))
		}
	}
	return sb.String()
}

// Samples renders the sample-equations panel: the registered equations and
// the sample linear system.
func Samples(equations []registry.Equation) string {
	var sb strings.Builder
	sb.WriteString("## Sample equations\n\n")
	writeRow(&sb, "Name", "f(x)", "Bracket", "Notes")
	writeRule(&sb, 4)
	for _, eq := range equations {
		writeRow(&sb,
			eq.Name,
			"`"+eq.Expression+"`",
			fmt.Sprintf("[%g, %g]", eq.Bracket[0], eq.Bracket[1]),
			eq.Description,
		)
	}

	sb.WriteString("\n**Jacobi sample system**\n\n")
	names := domain.ComponentNames(len(domain.SampleRHS))
	for i, row := range domain.SampleMatrix {
		sb.WriteString("    " + System(row, names) + fmt.Sprintf(" = %g\n", domain.SampleRHS[i]))
	}
	return sb.String()
}

// System formats one equation row, e.g. "4x + y + z".
func System(row []float64, names []string) string {
	var terms []string
	for j, c := range row {
		if c == 0 || j >= len(names) {
			continue
		}
		coef := fmt.Sprintf("%g", math.Abs(c))
		if coef == "1" {
			coef = ""
		}
		term := coef + names[j]
		switch {
		case len(terms) == 0 && c < 0:
			term = "-" + term
		case len(terms) > 0 && c < 0:
			term = "- " + term
		case len(terms) > 0:
			term = "+ " + term
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " ")
}

func statusLine(status domain.Status, iterations int) string {
	if status.Converged() {
		return fmt.Sprintf("**Status:** converged after %d iterations", iterations)
	}
	return fmt.Sprintf("**Status:** did not converge within %d iterations (best estimate shown)", iterations)
}

func writeRow(sb *strings.Builder, cells ...string) {
	sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func writeRule(sb *strings.Builder, n int) {
	sb.WriteString("|" + strings.Repeat(" --- |", n) + "\n")
}

func f6(v float64) string { return fmt.Sprintf("%.6f", v) }
func f4(v float64) string { return fmt.Sprintf("%.4f", v) }
