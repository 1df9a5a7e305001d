// Package chart renders convergence plots as Mermaid xychart diagrams.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/iterlab/pkg/domain"
)

// FalsePosition plots the estimate c per iteration, with the accepted root
// drawn as a flat reference line.
func FalsePosition(res *domain.RootResult) string {
	n := len(res.Trace)
	cs := make([]float64, n)
	root := make([]float64, n)
	for i, step := range res.Trace {
		cs[i] = step.C
		root[i] = res.Root
	}

	title := "False Position convergence"
	if res.Equation != "" {
		title += " (" + res.Equation + ")"
	}

	var sb strings.Builder
	writeHeader(&sb, title, n, "c")
	writeSeries(&sb, "line", cs)
	writeSeries(&sb, "line", root)
	return sb.String()
}

// Jacobi plots every component of the iterate per iteration, with the max
// change drawn as bars.
func Jacobi(res *domain.LinearResult) string {
	n := len(res.Trace)
	dim := len(res.X)

	components := make([][]float64, dim)
	for j := range components {
		components[j] = make([]float64, n)
	}
	changes := make([]float64, n)
	for i, step := range res.Trace {
		for j := 0; j < dim && j < len(step.X); j++ {
			components[j][i] = step.X[j]
		}
		changes[i] = step.MaxChange
	}

	var sb strings.Builder
	writeHeader(&sb, "Jacobi convergence", n, strings.Join(domain.ComponentNames(dim), ", ")+", max change")
	writeSeries(&sb, "bar", changes)
	for _, series := range components {
		writeSeries(&sb, "line", series)
	}
	return sb.String()
}

// Fenced wraps a diagram in a markdown mermaid code block.
func Fenced(diagram string) string {
	return "```mermaid\n" + diagram + "```\n"
}

func writeHeader(sb *strings.Builder, title string, points int, yLabel string) {
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title %q\n", sanitizeLabel(title)))

	ticks := make([]string, points)
	for i := range ticks {
		ticks[i] = strconv.Itoa(i + 1)
	}
	sb.WriteString(fmt.Sprintf("    x-axis \"Iteration\" [%s]\n", strings.Join(ticks, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis %q\n", sanitizeLabel(yLabel)))
}

func writeSeries(sb *strings.Builder, kind string, values []float64) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', 8, 64)
	}
	sb.WriteString(fmt.Sprintf("    %s [%s]\n", kind, strings.Join(parts, ", ")))
}

// Mermaid labels cannot carry double quotes.
func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
