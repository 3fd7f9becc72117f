package memo

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Fallible memoizes a FallibleComputation.
//
// Only successful results are stored. A failed computation returns its error
// and leaves the key unseen, so the next request for the same inputs runs the
// computation again. Nothing is retried automatically.
type Fallible[I1, I2 comparable, O any] struct {
	m *memoizer[I1, I2, O]
}

// NewFallible returns a Fallible that owns fn, backed by an empty store.
func NewFallible[I1, I2 comparable, O any](
	fn FallibleComputation[I1, I2, O],
	opts ...Option,
) *Fallible[I1, I2, O] {
	return NewFallibleWithStore(fn, nil, opts...)
}

// NewFallibleWithStore is NewFallible with a caller-supplied store.
// A nil store selects the default one.
func NewFallibleWithStore[I1, I2 comparable, O any](
	fn FallibleComputation[I1, I2, O],
	store Store[Key[I1, I2], O],
	opts ...Option,
) *Fallible[I1, I2, O] {
	return &Fallible[I1, I2, O]{m: newMemoizer(fn, store, opts)}
}

// Value returns the cached result for (a, b), or computes it on a miss.
// The computation's error is returned unchanged.
func (f *Fallible[I1, I2, O]) Value(a I1, b I2) (O, error) {
	return f.m.value(KeyOf(a, b))
}

// Prefill computes every listed pair. Failing pairs are reported together;
// the others stay cached.
func (f *Fallible[I1, I2, O]) Prefill(keys ...Key[I1, I2]) error {
	var result *multierror.Error
	for _, key := range keys {
		if _, err := f.m.value(key); err != nil {
			result = multierror.Append(result, fmt.Errorf("prefill %v: %w", key, err))
		}
	}
	return result.ErrorOrNil()
}

func (f *Fallible[I1, I2, O]) Len() int { return f.m.store.Len() }
func (f *Fallible[I1, I2, O]) Stats() Stats { return f.m.stats() }
func (f *Fallible[I1, I2, O]) Snapshot() map[Key[I1, I2]]O { return f.m.snapshot() }
func (f *Fallible[I1, I2, O]) Keys() []Key[I1, I2] { return lo.Keys(f.m.snapshot()) }
