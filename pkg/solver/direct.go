package solver

import (
	"fmt"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/edp1096/sparse"
)

// Direct solves Ax = b by sparse LU factorization.
// It is the reference answer iterative estimates are compared against.
func Direct(a [][]float64, b []float64) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, err
	}
	n := len(b)

	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}
	mat, err := sparse.Create(int64(n), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}
	defer mat.Destroy()

	// The sparse package indexes rows, columns and vectors from 1.
	rhs := make([]float64, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a[i][j] != 0 {
				mat.GetElement(int64(i+1), int64(j+1)).Real += a[i][j]
			}
		}
		rhs[i+1] = b[i]
	}

	if err := mat.Factor(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSingular, err)
	}
	solution, err := mat.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSingular, err)
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		if !finite(solution[i+1]) {
			return nil, fmt.Errorf("%w: component %d is not finite", domain.ErrSingular, i)
		}
		x[i] = solution[i+1]
	}
	return x, nil
}
