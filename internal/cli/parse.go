package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/iterlab/pkg/domain"
)

// ParseVector parses a comma or space separated list of numbers.
func ParseVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty vector", domain.ErrInvalidInput)
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, f)
		}
		out[i] = v
	}
	return out, nil
}

// ParseMatrix parses rows separated by ';', e.g. "4,1,1;1,5,1;1,1,6".
// Shape checks are left to the solver.
func ParseMatrix(s string) ([][]float64, error) {
	rows := strings.Split(strings.TrimSpace(s), ";")
	out := make([][]float64, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		v, err := ParseVector(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", domain.ErrInvalidInput)
	}
	return out, nil
}
