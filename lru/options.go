package lru

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	name   string
}

// Option configures a Cache at construction time.
type Option func(*options)

// WithLogger sets the logger used for eviction events. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the cache in log fields and stats.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		name:   "unnamed",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
