package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, New(t.TempDir()))
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent"))

	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Save(ctx, "k", &domain.Record{Key: "k", Method: domain.MethodJacobi}))
	require.NoError(t, store.Save(ctx, "k", &domain.Record{Key: "k", Method: domain.MethodFalsePosition}))

	rec, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, domain.MethodFalsePosition, rec.Method)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	store := New(t.TempDir())

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		err := store.Save(ctx, key, &domain.Record{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644))

	_, err := New(dir).Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrResultNotFound)
	assert.Contains(t, err.Error(), "failed to unmarshal record")
}

func TestNew_DefaultDir(t *testing.T) {
	assert.Equal(t, DefaultDir, New("").BasePath)
}
