package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/config"
	"github.com/aretw0/iterlab/pkg/adapters/file"
	"github.com/aretw0/iterlab/pkg/adapters/memory"
	"github.com/aretw0/iterlab/pkg/adapters/redis"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/observability"
	"github.com/aretw0/iterlab/pkg/ports"
)

// NewLab builds a Lab following the environment configuration: a Redis
// result cache when ITERLAB_REDIS_ADDR is set and reachable, a directory
// of JSON files when ITERLAB_CACHE_DIR is set, memory otherwise.
// The returned closer releases the cache connection.
func NewLab(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*iterlab.Lab, func() error) {
	store, closer := newStore(ctx, cfg, logger)

	lab := iterlab.New(
		iterlab.WithLogger(logger),
		iterlab.WithStore(store),
		iterlab.WithLifecycleHooks(observability.Aggregate(hooks...)),
	)
	return lab, closer
}

func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.ResultStore, func() error) {
	noop := func() error { return nil }
	if !cfg.UseRedis() {
		return fallbackStore(cfg, logger), noop
	}

	store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
		redis.WithTTL(cfg.CacheTTL),
		redis.WithPrefix(cfg.CachePrefix),
	)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, falling back", "addr", cfg.RedisAddr, "err", err)
		_ = store.Close()
		return fallbackStore(cfg, logger), noop
	}

	logger.Debug("caching results in redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return store, store.Close
}

func fallbackStore(cfg config.Config, logger *slog.Logger) ports.ResultStore {
	if cfg.CacheDir != "" {
		logger.Debug("caching results on disk", "dir", cfg.CacheDir)
		return file.New(cfg.CacheDir)
	}
	return memory.NewStore()
}
