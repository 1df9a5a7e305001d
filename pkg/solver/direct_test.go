package solver_test

import (
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirect_SampleSystem(t *testing.T) {
	a, b := sampleSystem()
	x, err := solver.Direct(a, b)
	require.NoError(t, err)

	require.Len(t, x, 3)
	assert.InDelta(t, 1970.0/107.0, x[0], 1e-9)
	assert.InDelta(t, 1210.0/107.0, x[1], 1e-9)
	assert.InDelta(t, 1610.0/107.0, x[2], 1e-9)
}

func TestDirect_AgreesWithJacobi(t *testing.T) {
	a, b := sampleSystem()
	exact, err := solver.Direct(a, b)
	require.NoError(t, err)

	res, err := solver.Jacobi(a, b, 1e-12, 200)
	require.NoError(t, err)

	for i := range exact {
		assert.InDelta(t, exact[i], res.X[i], 1e-9)
	}
}

func TestDirect_ShapeError(t *testing.T) {
	_, err := solver.Direct([][]float64{{1, 2}}, []float64{1})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}
