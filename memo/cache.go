package memo

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Computation is a pure function of two inputs.
type Computation[I1, I2 comparable, O any] func(I1, I2) O

// FallibleComputation is a pure function of two inputs that may fail.
type FallibleComputation[I1, I2 comparable, O any] func(I1, I2) (O, error)

// Cache memoizes a Computation.
// The computation runs at most once per distinct input pair for the lifetime of the cache.
type Cache[I1, I2 comparable, O any] struct {
	m *memoizer[I1, I2, O]
}

// New returns a Cache that owns fn, backed by an empty store.
func New[I1, I2 comparable, O any](fn Computation[I1, I2, O], opts ...Option) *Cache[I1, I2, O] {
	return NewWithStore(fn, nil, opts...)
}

// NewWithStore is New with a caller-supplied store. A nil store selects the default one.
// The store should be empty; entries already present are served as cached results.
func NewWithStore[I1, I2 comparable, O any](
	fn Computation[I1, I2, O],
	store Store[Key[I1, I2], O],
	opts ...Option,
) *Cache[I1, I2, O] {
	return &Cache[I1, I2, O]{
		m: newMemoizer(func(a I1, b I2) (O, error) {
			return fn(a, b), nil
		}, store, opts),
	}
}

// Value returns the cached result for (a, b), computing and storing it on the first request.
func (c *Cache[I1, I2, O]) Value(a I1, b I2) O {
	v, _ := c.m.value(KeyOf(a, b))
	return v
}

func (c *Cache[I1, I2, O]) Len() int { return c.m.store.Len() }
func (c *Cache[I1, I2, O]) Stats() Stats { return c.m.stats() }
func (c *Cache[I1, I2, O]) Snapshot() map[Key[I1, I2]]O { return c.m.snapshot() }
func (c *Cache[I1, I2, O]) Keys() []Key[I1, I2] { return lo.Keys(c.m.snapshot()) }

type memoizer[I1, I2 comparable, O any] struct {
	fn       FallibleComputation[I1, I2, O]
	store    Store[Key[I1, I2], O]
	flight   *singleflight.Group
	logger   *zap.Logger
	counters counters
}

func newMemoizer[I1, I2 comparable, O any](
	fn FallibleComputation[I1, I2, O],
	store Store[Key[I1, I2], O],
	opts []Option,
) *memoizer[I1, I2, O] {
	o := newOptions(opts)
	if store == nil {
		store = defaultStore[I1, I2, O](o)
	}
	logger := o.Logger.With(
		zap.String("cache", uuid.New().String()),
		zap.String("name", o.Name),
	)
	m := &memoizer[I1, I2, O]{
		fn:     fn,
		store:  store,
		logger: logger,
	}
	if o.Concurrent {
		m.flight = &singleflight.Group{}
	}
	return m
}

func (m *memoizer[I1, I2, O]) value(key Key[I1, I2]) (O, error) {
	if v, ok := m.store.Load(key); ok {
		m.counters.hits.Add(1)
		return v, nil
	}
	m.counters.misses.Add(1)
	if !key.Reflexive() {
		// a NaN key can never be found again, so it is computed on every call and never stored
		return m.run(key)
	}
	if m.flight == nil {
		return m.compute(key)
	}
	return m.claim(key)
}

type claimed[I1, I2 comparable, O any] struct {
	key   Key[I1, I2]
	value O
}

// claim runs the check-then-compute sequence for key at most once at a time.
// Callers racing on the same key share one computation. The claim is grouped by
// the key encoding, so a caller that joined the claim of a different key with
// the same encoding tries again. key must be reflexive.
func (m *memoizer[I1, I2, O]) claim(key Key[I1, I2]) (O, error) {
	for {
		res, err, _ := m.flight.Do(key.Encode(), func() (any, error) {
			if v, ok := m.store.Load(key); ok {
				return claimed[I1, I2, O]{key: key, value: v}, nil
			}
			v, err := m.compute(key)
			return claimed[I1, I2, O]{key: key, value: v}, err
		})
		c := res.(claimed[I1, I2, O])
		if c.key != key {
			continue
		}
		return c.value, err
	}
}

func (m *memoizer[I1, I2, O]) run(key Key[I1, I2]) (O, error) {
	m.counters.computations.Add(1)
	v, err := m.fn(key.First, key.Second)
	if err != nil {
		m.counters.failures.Add(1)
		m.logger.Debug("computation failed", zap.Stringer("key", key), zap.Error(err))
		var zero O
		return zero, err
	}
	return v, nil
}

func (m *memoizer[I1, I2, O]) compute(key Key[I1, I2]) (O, error) {
	v, err := m.run(key)
	if err != nil {
		return v, err
	}
	if !m.store.InsertIfAbsent(key, v) {
		// first stored value wins
		if stored, ok := m.store.Load(key); ok {
			v = stored
		}
	}
	m.logger.Debug("computed", zap.Stringer("key", key))
	return v, nil
}

func (m *memoizer[I1, I2, O]) stats() Stats {
	return m.counters.snapshot(m.store.Len())
}

func (m *memoizer[I1, I2, O]) snapshot() map[Key[I1, I2]]O {
	out := make(map[Key[I1, I2]]O, m.store.Len())
	m.store.Range(func(k Key[I1, I2], v O) bool {
		out[k] = v
		return true
	})
	return out
}
