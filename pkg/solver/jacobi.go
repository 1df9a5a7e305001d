package solver

import (
	"fmt"
	"math"

	"github.com/aretw0/iterlab/pkg/domain"
)

// Jacobi iterates x(k+1)[i] = (b[i] - Σ_{j≠i} a[i][j]·x(k)[j]) / a[i][i]
// from x(0) = 0 until the largest per-component change drops below tol.
//
// Every component of the next iterate reads only the previous iterate.
// Divergence is not detected; a growing MaxChange is visible in the trace.
// An iterate that overflows to ±Inf or NaN yields domain.ErrNonFinite.
// A zero diagonal entry yields domain.ErrDivisionByZero before any pass runs.
func Jacobi(a [][]float64, b []float64, tol float64, maxIter int) (*domain.LinearResult, error) {
	if err := domain.ValidateLimits(tol, maxIter); err != nil {
		return nil, solveErr(domain.MethodJacobi, 0, err)
	}
	if err := ValidateSystem(a, b); err != nil {
		return nil, solveErr(domain.MethodJacobi, 0, err)
	}
	for i := range a {
		if a[i][i] == 0 {
			return nil, solveErr(domain.MethodJacobi, 0,
				fmt.Errorf("%w: a[%d][%d] is zero", domain.ErrDivisionByZero, i, i))
		}
	}

	n := len(b)
	x := make([]float64, n)
	res := &domain.LinearResult{
		Status: domain.StatusMaxIterations,
		Trace:  make([]domain.JacobiStep, 0, min(maxIter, 64)),
	}

	for k := 1; k <= maxIter; k++ {
		next := make([]float64, n)
		maxChange := 0.0
		for i := 0; i < n; i++ {
			s := b[i]
			for j := 0; j < n; j++ {
				if j != i {
					s -= a[i][j] * x[j]
				}
			}
			next[i] = s / a[i][i]
			maxChange = math.Max(maxChange, math.Abs(next[i]-x[i]))
		}

		if !finite(maxChange) || !allFinite(next) {
			return nil, solveErr(domain.MethodJacobi, k, domain.ErrNonFinite)
		}

		res.Trace = append(res.Trace, domain.JacobiStep{Index: k, X: next, MaxChange: maxChange})
		x = next

		if maxChange < tol {
			res.Status = domain.StatusConverged
			break
		}
	}

	res.X = append([]float64(nil), x...)
	res.Residual = Residual(a, x, b)
	res.DiagonallyDominant = DiagonallyDominant(a)
	return res, nil
}

// ValidateSystem checks that a is a non-empty square matrix and that b matches it.
func ValidateSystem(a [][]float64, b []float64) error {
	n := len(a)
	if n == 0 {
		return fmt.Errorf("%w: empty matrix", domain.ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", domain.ErrDimensionMismatch, i, len(row), n)
		}
	}
	if len(b) != n {
		return fmt.Errorf("%w: rhs has %d entries, want %d", domain.ErrDimensionMismatch, len(b), n)
	}
	return nil
}

// Residual returns b - Ax. Shapes are assumed valid.
func Residual(a [][]float64, x, b []float64) []float64 {
	r := make([]float64, len(b))
	for i, row := range a {
		s := b[i]
		for j, v := range row {
			s -= v * x[j]
		}
		r[i] = s
	}
	return r
}

// DiagonallyDominant reports whether |a[i][i]| > Σ_{j≠i} |a[i][j]| for every row.
func DiagonallyDominant(a [][]float64) bool {
	for i, row := range a {
		off := 0.0
		for j, v := range row {
			if j != i {
				off += math.Abs(v)
			}
		}
		if math.Abs(row[i]) <= off {
			return false
		}
	}
	return len(a) > 0
}

func allFinite(v []float64) bool {
	for _, e := range v {
		if !finite(e) {
			return false
		}
	}
	return true
}

// MaxAbs returns the infinity norm of v.
func MaxAbs(v []float64) float64 {
	m := 0.0
	for _, e := range v {
		m = math.Max(m, math.Abs(e))
	}
	return m
}
