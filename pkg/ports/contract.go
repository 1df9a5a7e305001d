package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		record := &domain.Record{
			Key:       key,
			Method:    domain.MethodFalsePosition,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			Root: &domain.RootResult{
				Equation: "cubic",
				Root:     1.5,
				Status:   domain.StatusConverged,
				Trace: []domain.FalsePositionStep{
					{Index: 1, A: 1, B: 2, C: 1.5, FA: -2, FB: 4, FC: -0.125},
				},
			},
		}

		err := store.Save(ctx, key, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.Method, loaded.Method)
		require.NotNil(t, loaded.Root)
		assert.Equal(t, record.Root.Root, loaded.Root.Root)
		assert.Equal(t, record.Root.Trace, loaded.Root.Trace)
		assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Loaded Record Is Isolated", func(t *testing.T) {
		record := &domain.Record{
			Key:    key + "-iso",
			Method: domain.MethodJacobi,
			Linear: &domain.LinearResult{
				X:      []float64{1, 2},
				Status: domain.StatusConverged,
				Trace:  []domain.JacobiStep{{Index: 1, X: []float64{1, 2}, MaxChange: 2}},
			},
		}
		require.NoError(t, store.Save(ctx, record.Key, record))
		defer func() { _ = store.Delete(ctx, record.Key) }()

		record.Linear.X[0] = 42

		loaded, err := store.Load(ctx, record.Key)
		require.NoError(t, err)
		assert.Equal(t, 1.0, loaded.Linear.X[0], "store must not alias the caller's record")

		loaded.Linear.Trace[0].X[1] = 99
		again, err := store.Load(ctx, record.Key)
		require.NoError(t, err)
		assert.Equal(t, 2.0, again.Linear.Trace[0].X[1], "store must not hand out its own copy")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, key, &domain.Record{Key: key, Method: domain.MethodJacobi})
		require.NoError(t, err)

		err = store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, &domain.Record{Key: id1, Method: domain.MethodJacobi})
		_ = store.Save(ctx, id2, &domain.Record{Key: id2, Method: domain.MethodJacobi})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
