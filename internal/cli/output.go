package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/iterlab/internal/presentation/chart"
	"github.com/aretw0/iterlab/internal/presentation/table"
	"github.com/aretw0/iterlab/internal/presentation/tui"
	"github.com/aretw0/iterlab/pkg/domain"
)

// Output formats accepted by the one-shot commands.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatChart    = "chart"
)

// Printer writes solve results in the selected format.
type Printer struct {
	Out    io.Writer
	Format string
	Render tui.Renderer
	// Charts appends a convergence chart to markdown output.
	Charts bool
}

// ValidateFormat checks a --format value.
func ValidateFormat(format string) error {
	switch format {
	case FormatMarkdown, FormatJSON, FormatChart:
		return nil
	}
	return fmt.Errorf("%w: unknown format %q (want markdown, json or chart)", domain.ErrInvalidInput, format)
}

// Root prints a root-finding result.
func (p *Printer) Root(res *domain.RootResult) error {
	switch p.Format {
	case FormatJSON:
		return p.json(res)
	case FormatChart:
		_, err := io.WriteString(p.Out, chart.FalsePosition(res))
		return err
	}

	var sb strings.Builder
	sb.WriteString("## False Position\n\n")
	sb.WriteString(table.FalsePosition(res))
	sb.WriteString("\n")
	sb.WriteString(table.RootSummary(res))
	if p.Charts {
		sb.WriteString("\n" + chart.Fenced(chart.FalsePosition(res)))
	}
	return p.markdown(sb.String())
}

// Linear prints a Jacobi result. exact may be nil.
func (p *Printer) Linear(res *domain.LinearResult, exact []float64) error {
	switch p.Format {
	case FormatJSON:
		return p.json(res)
	case FormatChart:
		_, err := io.WriteString(p.Out, chart.Jacobi(res))
		return err
	}

	var sb strings.Builder
	sb.WriteString("## Jacobi Method\n\n")
	sb.WriteString(table.Jacobi(res))
	sb.WriteString("\n")
	sb.WriteString(table.LinearSummary(res, exact))
	if p.Charts {
		sb.WriteString("\n" + chart.Fenced(chart.Jacobi(res)))
	}
	return p.markdown(sb.String())
}

// Markdown renders and prints an arbitrary markdown document.
func (p *Printer) Markdown(md string) error {
	return p.markdown(md)
}

func (p *Printer) markdown(md string) error {
	render := p.Render
	if render == nil {
		render = tui.PlainRenderer
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = io.WriteString(p.Out, out)
	return err
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
