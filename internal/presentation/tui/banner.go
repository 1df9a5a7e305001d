package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner writes the iterlab banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _ _            _       _     ", "#38bdf8"},
		{"(_) |_ ___ _ __| | __ _| |__  ", "#22d3ee"},
		{"| | __/ _ \\ '__| |/ _` | '_ \\ ", "#2dd4bf"},
		{"| | ||  __/ |  | | (_| | |_) |", "#34d399"},
		{"|_|\\__\\___|_|  |_|\\__,_|_.__/ ", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}

// Status returns a colored status label for a solve outcome.
func Status(status domain.Status) string {
	p := termenv.EnvColorProfile()
	if status.Converged() {
		return termenv.String("✔ converged").Foreground(p.Color("#4ade80")).String()
	}
	return termenv.String("⚠ max iterations reached").Foreground(p.Color("#facc15")).String()
}

// Error returns a colored error line.
func Error(err error) string {
	p := termenv.EnvColorProfile()
	return termenv.String("Error: " + err.Error()).Foreground(p.Color("#f87171")).String()
}
