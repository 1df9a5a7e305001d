package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/presentation/table"
	"github.com/aretw0/iterlab/internal/presentation/tui"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/solver"
)

// Menu defaults, taken from the classroom sample.
const (
	MenuEquation = "cubic-alt"
	MenuA        = 1.0
	MenuB        = 3.0
)

// Session is the interactive method menu.
type Session struct {
	Lab     *iterlab.Lab
	In      io.Reader
	Out     io.Writer
	Printer *Printer
	Banner  bool
	Version string

	scanner *bufio.Scanner
}

// Run shows the menu until the user quits or input ends.
// Solver errors are printed and the menu continues.
func (s *Session) Run(ctx context.Context) error {
	s.scanner = bufio.NewScanner(s.In)
	if s.Printer == nil {
		s.Printer = &Printer{Out: s.Out, Format: FormatMarkdown}
	}
	if s.Banner {
		tui.PrintBanner(s.Out, s.Version)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.Out, "Select a method:")
		fmt.Fprintln(s.Out, "  1) False Position")
		fmt.Fprintln(s.Out, "  2) Jacobi Method")
		fmt.Fprintln(s.Out, "  3) Sample equations")
		fmt.Fprintln(s.Out, "  q) Quit")

		choice, err := s.prompt("> ")
		if err != nil {
			return HandleExecutionError(err)
		}

		switch strings.ToLower(choice) {
		case "1", "false position", "falsi":
			err = s.falsePosition(ctx)
		case "2", "jacobi":
			err = s.jacobi(ctx)
		case "3", "samples":
			err = s.Printer.Markdown(table.Samples(s.Lab.Equations()))
		case "q", "quit", "exit":
			printSystemMessage(s.Out, "Bye.")
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(s.Out, "Unknown option %q\n", choice)
			continue
		}

		if err != nil {
			if IsInterrupted(err) {
				return HandleExecutionError(err)
			}
			fmt.Fprintln(s.Out, tui.Error(err))
		}
		fmt.Fprintln(s.Out)
	}
}

func (s *Session) falsePosition(ctx context.Context) error {
	name, err := s.promptString("Equation", MenuEquation)
	if err != nil {
		return err
	}
	a, err := s.promptFloat("a", MenuA)
	if err != nil {
		return err
	}
	b, err := s.promptFloat("b", MenuB)
	if err != nil {
		return err
	}
	tol, err := s.promptFloat("Tolerance", domain.DefaultFalsePositionTolerance)
	if err != nil {
		return err
	}
	maxIter, err := s.promptInt("Max iterations", domain.DefaultFalsePositionMaxIter)
	if err != nil {
		return err
	}

	res, err := s.Lab.FalsePosition(ctx, domain.FalsePositionRequest{
		Equation:      name,
		A:             &a,
		B:             &b,
		Tolerance:     &tol,
		MaxIterations: &maxIter,
	})
	if err != nil {
		return err
	}
	return s.Printer.Root(res)
}

func (s *Session) jacobi(ctx context.Context) error {
	req := domain.JacobiRequest{}

	useSample, err := s.promptString("Use the sample system? [Y/n]", "y")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.ToLower(useSample), "y") {
		n, err := s.promptInt("Number of unknowns", 3)
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("%w: number of unknowns must be >= 1", domain.ErrInvalidInput)
		}
		req.Matrix = make([][]float64, n)
		for i := range req.Matrix {
			req.Matrix[i], err = s.promptVector(fmt.Sprintf("Row %d (%d coefficients)", i+1, n))
			if err != nil {
				return err
			}
		}
		req.RHS, err = s.promptVector(fmt.Sprintf("Right-hand side (%d values)", n))
		if err != nil {
			return err
		}
	}

	tol, err := s.promptFloat("Tolerance", domain.DefaultJacobiTolerance)
	if err != nil {
		return err
	}
	maxIter, err := s.promptInt("Max iterations", domain.DefaultJacobiMaxIter)
	if err != nil {
		return err
	}
	req.Tolerance = &tol
	req.MaxIterations = &maxIter

	res, err := s.Lab.Jacobi(ctx, req)
	if err != nil {
		return err
	}

	norm := req.Normalize()
	// The direct solution is informational; a singular matrix just omits it.
	exact, _ := solver.Direct(norm.Matrix, norm.RHS)
	return s.Printer.Linear(res, exact)
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.Out, label)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Session) promptString(label, def string) (string, error) {
	line, err := s.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// promptFloat asks until it gets a number or input ends.
func (s *Session) promptFloat(label string, def float64) (float64, error) {
	for {
		line, err := s.prompt(fmt.Sprintf("%s [%g]: ", label, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.Out, "%q is not a number\n", line)
	}
}

func (s *Session) promptInt(label string, def int) (int, error) {
	for {
		line, err := s.prompt(fmt.Sprintf("%s [%d]: ", label, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.Out, "%q is not an integer\n", line)
	}
}

func (s *Session) promptVector(label string) ([]float64, error) {
	for {
		line, err := s.prompt(label + ": ")
		if err != nil {
			return nil, err
		}
		v, err := ParseVector(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(s.Out, err)
	}
}
