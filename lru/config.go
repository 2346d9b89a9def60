package lru

import (
	"fmt"

	"github.com/on-the-ground/recency_memo/lru/configkeys"
	"github.com/on-the-ground/recency_memo/shared/helper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings a cache can be built from.
type Config struct {
	Capacity int
	Name     string
	LogLevel zapcore.Level
}

// DefaultConfig returns a small unnamed cache logging at info level.
func DefaultConfig() Config {
	return Config{
		Capacity: 128,
		Name:     "unnamed",
		LogLevel: zapcore.InfoLevel,
	}
}

// ConfigFromBindings reads a Config from a flat key-value map keyed by
// configkeys constants. Missing keys keep their defaults.
func ConfigFromBindings(bindings map[string]any) (Config, error) {
	cfg := DefaultConfig()

	if capacity, found, err := helper.LookupTyped[int](bindings, configkeys.ConfigCacheCapacity); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	} else if found {
		if capacity < 0 {
			return cfg, fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrInvalidCapacity, capacity)
		}
		cfg.Capacity = capacity
	}

	if name, found, err := helper.LookupTyped[string](bindings, configkeys.ConfigCacheName); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	} else if found {
		cfg.Name = name
	}

	if level, found, err := helper.LookupTyped[string](bindings, configkeys.ConfigCacheLogLevel); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	} else if found {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.LogLevel = parsed
	}

	return cfg, nil
}

// Options turns the config into construction options for the given logger.
func (cfg Config) Options(logger *zap.Logger) []Option {
	opts := []Option{WithName(cfg.Name)}
	if logger != nil {
		opts = append(opts, WithLogger(logger.WithOptions(zap.IncreaseLevel(cfg.LogLevel))))
	}
	return opts
}

// NewFromConfig creates a cache for comparable keys from cfg.
func NewFromConfig[K comparable, V any](cfg Config, logger *zap.Logger) (*Cache[K, V], error) {
	return New[K, V](cfg.Capacity, cfg.Options(logger)...)
}
