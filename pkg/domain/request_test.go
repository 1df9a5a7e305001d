package domain_test

import (
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJacobiRequest_Normalize(t *testing.T) {
	t.Run("Empty Request Selects Sample System", func(t *testing.T) {
		req := domain.JacobiRequest{}.Normalize()

		assert.Equal(t, domain.SampleMatrix, req.Matrix)
		assert.Equal(t, domain.SampleRHS, req.RHS)
		require.NotNil(t, req.Tolerance)
		require.NotNil(t, req.MaxIterations)
		assert.Equal(t, domain.DefaultJacobiTolerance, *req.Tolerance)
		assert.Equal(t, domain.DefaultJacobiMaxIter, *req.MaxIterations)

		// The sample is copied, not aliased.
		req.Matrix[0][0] = 99
		assert.Equal(t, 4.0, domain.SampleMatrix[0][0])
	})

	t.Run("Explicit Zero Tolerance Is Kept", func(t *testing.T) {
		req := domain.JacobiRequest{
			Matrix:    [][]float64{{2}},
			RHS:       []float64{4},
			Tolerance: domain.Ptr(0.0),
		}.Normalize()

		assert.Equal(t, 0.0, *req.Tolerance)
		assert.Equal(t, [][]float64{{2}}, req.Matrix)
	})
}

func TestValidateLimits(t *testing.T) {
	assert.NoError(t, domain.ValidateLimits(0, 1))
	assert.ErrorIs(t, domain.ValidateLimits(-1e-9, 10), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.ValidateLimits(1e-6, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.ValidateLimits(1e-6, -5), domain.ErrInvalidInput)
}

func TestStatus(t *testing.T) {
	assert.True(t, domain.StatusConverged.Converged())
	assert.False(t, domain.StatusMaxIterations.Converged())
}
