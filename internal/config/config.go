// Package config loads iterlab settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Command flags override them.
type Config struct {
	Port     int    `env:"ITERLAB_PORT" envDefault:"8080"`
	LogLevel string `env:"ITERLAB_LOG_LEVEL" envDefault:"info"`

	// Cache selects Redis when RedisAddr is set, then a directory when
	// CacheDir is set; otherwise results stay in memory.
	RedisAddr     string        `env:"ITERLAB_REDIS_ADDR"`
	RedisPassword string        `env:"ITERLAB_REDIS_PASSWORD"`
	RedisDB       int           `env:"ITERLAB_REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"ITERLAB_CACHE_TTL" envDefault:"1h"`
	CachePrefix   string        `env:"ITERLAB_CACHE_PREFIX" envDefault:"iterlab:result:"`
	CacheDir      string        `env:"ITERLAB_CACHE_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("parse env: ITERLAB_PORT out of range: %d", cfg.Port)
	}
	return cfg, nil
}

// UseRedis reports whether results should be cached in Redis.
func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}
