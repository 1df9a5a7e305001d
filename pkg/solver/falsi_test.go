package solver_test

import (
	"math"
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubic(x float64) float64 { return x*x*x - x - 2 }

func TestFalsePosition_Cubic(t *testing.T) {
	res, err := solver.FalsePosition(cubic, 1, 2, 1e-6, 100)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConverged, res.Status)
	assert.InDelta(t, 1.521380, res.Root, 1e-5)
	assert.Less(t, math.Abs(cubic(res.Root)), 1e-6)
	assert.Equal(t, 13, res.Iterations())

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, res.Root, last.C, "final record must carry the accepted root")
}

func TestFalsePosition_TraceShape(t *testing.T) {
	res, err := solver.FalsePosition(cubic, 1, 2, 1e-6, 100)
	require.NoError(t, err)

	first := res.Trace[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 1.0, first.A)
	assert.Equal(t, 2.0, first.B)
	assert.Equal(t, -2.0, first.FA)
	assert.Equal(t, 4.0, first.FB)
	assert.InDelta(t, 4.0/3.0, first.C, 1e-12)

	for i, step := range res.Trace {
		assert.Equal(t, i+1, step.Index)
		assert.Equal(t, cubic(step.C), step.FC)
		if i > 0 {
			prev := res.Trace[i-1]
			// Exactly one endpoint moves to the previous estimate.
			movedA := step.A == prev.C && step.B == prev.B
			movedB := step.B == prev.C && step.A == prev.A
			assert.True(t, movedA || movedB, "iteration %d did not replace an endpoint", step.Index)
		}
	}
}

func TestFalsePosition_SameSignBracketStillRuns(t *testing.T) {
	// f(3) and f(4) are both positive: no bracket check is performed.
	res, err := solver.FalsePosition(cubic, 3, 4, 1e-6, 100)
	require.NoError(t, err)

	assert.Greater(t, res.Trace[0].FA*res.Trace[0].FB, 0.0)
	assert.NotEmpty(t, res.Trace)
	assert.LessOrEqual(t, res.Iterations(), 100)
	assert.InDelta(t, 1.5213797, res.Root, 1e-5)
}

func TestFalsePosition_MaxIterations(t *testing.T) {
	res, err := solver.FalsePosition(cubic, 1, 2, 1e-6, 3)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusMaxIterations, res.Status)
	assert.False(t, res.Status.Converged())
	assert.Len(t, res.Trace, 3)
	assert.Equal(t, res.Trace[2].C, res.Root)
}

func TestFalsePosition_ExactRootStopsImmediately(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	res, err := solver.FalsePosition(f, 1, 3, 1e-6, 100)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConverged, res.Status)
	assert.Len(t, res.Trace, 1)
	assert.Equal(t, 1.0, res.Root)
}

func TestFalsePosition_Errors(t *testing.T) {
	tests := []struct {
		name    string
		f       solver.Func
		a, b    float64
		tol     float64
		maxIter int
		wantErr error
	}{
		{"Degenerate Bracket", cubic, 1.5, 1.5, 1e-6, 100, domain.ErrDivisionByZero},
		{"Flat Function", func(float64) float64 { return 3 }, 0, 1, 1e-6, 100, domain.ErrDivisionByZero},
		{"Negative Tolerance", cubic, 1, 2, -1, 100, domain.ErrInvalidInput},
		{"Zero Iterations", cubic, 1, 2, 1e-6, 0, domain.ErrInvalidInput},
		{"Nil Function", nil, 1, 2, 1e-6, 100, domain.ErrInvalidInput},
		{"NaN Bracket", cubic, math.NaN(), 2, 1e-6, 100, domain.ErrNonFinite},
		{"Pole", func(x float64) float64 { return 1 / x }, 0, 1, 1e-6, 100, domain.ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := solver.FalsePosition(tt.f, tt.a, tt.b, tt.tol, tt.maxIter)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var solveErr *domain.SolveError
			require.ErrorAs(t, err, &solveErr)
			assert.Equal(t, domain.MethodFalsePosition, solveErr.Method)
		})
	}
}

func TestFalsePosition_DivisionByZeroReportsIteration(t *testing.T) {
	_, err := solver.FalsePosition(cubic, 2, 2, 1e-6, 10)

	var solveErr *domain.SolveError
	require.ErrorAs(t, err, &solveErr)
	assert.Equal(t, 1, solveErr.Iteration)
	assert.Contains(t, err.Error(), "iteration 1")
}

func TestFalsePosition_Deterministic(t *testing.T) {
	r1, err := solver.FalsePosition(cubic, 1, 2, 1e-9, 100)
	require.NoError(t, err)
	r2, err := solver.FalsePosition(cubic, 1, 2, 1e-9, 100)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}
