package solver

import (
	"math"

	"github.com/aretw0/iterlab/pkg/domain"
)

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// FalsePosition searches for a root of f starting from the bracket [a, b].
//
// The bracket is not validated: if f(a) and f(b) share a sign the loop still
// runs and simply converges slowly or not at all. Each pass records
// {i, a, b, c, f(a), f(b), f(c)} and stops as soon as |f(c)| < tol.
// f(a) == f(b) yields domain.ErrDivisionByZero.
func FalsePosition(f Func, a, b, tol float64, maxIter int) (*domain.RootResult, error) {
	if f == nil {
		return nil, solveErr(domain.MethodFalsePosition, 0, domain.ErrInvalidInput)
	}
	if err := domain.ValidateLimits(tol, maxIter); err != nil {
		return nil, solveErr(domain.MethodFalsePosition, 0, err)
	}

	res := &domain.RootResult{
		Status: domain.StatusMaxIterations,
		Trace:  make([]domain.FalsePositionStep, 0, min(maxIter, 64)),
	}

	for i := 1; i <= maxIter; i++ {
		fa, fb := f(a), f(b)
		if !finite(fa) || !finite(fb) {
			return nil, solveErr(domain.MethodFalsePosition, i, domain.ErrNonFinite)
		}
		if fa == fb {
			return nil, solveErr(domain.MethodFalsePosition, i, domain.ErrDivisionByZero)
		}

		c := b - fb*(b-a)/(fb-fa)
		fc := f(c)
		if !finite(c) || !finite(fc) {
			return nil, solveErr(domain.MethodFalsePosition, i, domain.ErrNonFinite)
		}

		res.Trace = append(res.Trace, domain.FalsePositionStep{
			Index: i, A: a, B: b, C: c, FA: fa, FB: fb, FC: fc,
		})
		res.Root = c

		if math.Abs(fc) < tol {
			res.Status = domain.StatusConverged
			break
		}

		if fa*fc < 0 {
			b = c
		} else {
			a = c
		}
	}

	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func solveErr(method domain.Method, iteration int, err error) error {
	return &domain.SolveError{Method: method, Iteration: iteration, Err: err}
}
