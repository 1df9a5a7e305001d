package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/iterlab/internal/config"
	"github.com/aretw0/iterlab/internal/logging"
	"github.com/aretw0/iterlab/pkg/adapters/file"
	"github.com/aretw0/iterlab/pkg/adapters/memory"
	"github.com/aretw0/iterlab/pkg/adapters/redis"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLab_Memory(t *testing.T) {
	lab, closer := NewLab(context.Background(), config.Config{}, logging.NewNop())
	defer closer()

	assert.IsType(t, &memory.Store{}, lab.Store())
}

func TestNewLab_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{RedisAddr: mr.Addr(), CacheTTL: time.Hour, CachePrefix: "test:"}

	var finished int
	hooks := domain.LifecycleHooks{
		OnSolveFinish: func(context.Context, *domain.SolveEvent) { finished++ },
	}

	lab, closer := NewLab(context.Background(), cfg, logging.NewNop(), hooks)
	defer closer()
	require.IsType(t, &redis.Store{}, lab.Store())

	_, err := lab.Jacobi(context.Background(), domain.JacobiRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, finished)

	keys := mr.Keys()
	assert.Contains(t, keys, "test:index")
	assert.Len(t, keys, 2)
}

func TestNewLab_RedisUnreachableFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	lab, closer := NewLab(context.Background(), config.Config{RedisAddr: addr}, logging.NewNop())
	defer closer()

	assert.IsType(t, &memory.Store{}, lab.Store())
}

func TestNewLab_FileCache(t *testing.T) {
	dir := t.TempDir()
	lab, closer := NewLab(context.Background(), config.Config{CacheDir: dir}, logging.NewNop())
	defer closer()
	require.IsType(t, &file.Store{}, lab.Store())

	_, err := lab.Jacobi(context.Background(), domain.JacobiRequest{})
	require.NoError(t, err)

	keys, err := lab.Store().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestNewLab_RedisUnreachableFallsBackToDir(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Config{RedisAddr: addr, CacheDir: t.TempDir()}
	lab, closer := NewLab(context.Background(), cfg, logging.NewNop())
	defer closer()

	assert.IsType(t, &file.Store{}, lab.Store())
}
