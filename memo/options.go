package memo

import "go.uber.org/zap"

// Options configures a memo cache.
type Options struct {
	// Name is attached to every log line of the cache.
	Name string
	// Logger receives debug logs on computation and failure. Defaults to a no-op logger.
	Logger *zap.Logger
	// Concurrent makes Value safe to call from many goroutines.
	Concurrent bool
	// Shards is the shard count of the default store in concurrent mode.
	Shards int
}

type Option func(*Options)

func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithConcurrency enables concurrent mode. A non-positive shards uses DefaultShards.
//
// In concurrent mode the computation still runs at most once per key, even when
// first requests for the same key race. A store passed to NewWithStore or
// NewFallibleWithStore must then be safe for concurrent use itself.
func WithConcurrency(shards int) Option {
	return func(o *Options) {
		o.Concurrent = true
		o.Shards = shards
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Shards <= 0 {
		o.Shards = DefaultShards
	}
	return o
}

func defaultStore[I1, I2 comparable, O any](o Options) Store[Key[I1, I2], O] {
	if o.Concurrent {
		return NewShardedStore[I1, I2, O](o.Shards)
	}
	return NewMapStore[Key[I1, I2], O]()
}
