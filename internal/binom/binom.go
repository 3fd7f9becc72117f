// Package binom computes binomial coefficients for small sets.
package binom

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/memocache/memo"
)

// MaxElements is the largest n whose factorial fits in a uint64.
const MaxElements = 20

var (
	ErrNoElements     = errors.New("set has no elements")
	ErrTooLarge       = errors.New("set has too many elements")
	ErrChosenTooLarge = errors.New("chosen more elements than the set has")
)

// Coefficient returns "n choose k", the number of k-element subsets of {1, ..., n}.
func Coefficient(n, k uint64) (uint64, error) {
	switch {
	case n == 0:
		return 0, fmt.Errorf("%w: n=%d", ErrNoElements, n)
	case n > MaxElements:
		return 0, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, n, MaxElements)
	case k > n:
		return 0, fmt.Errorf("%w: n=%d, k=%d", ErrChosenTooLarge, n, k)
	}
	return factorial(n) / (factorial(k) * factorial(n-k)), nil
}

func factorial(x uint64) uint64 {
	f := uint64(1)
	for i := uint64(2); i <= x; i++ {
		f *= i
	}
	return f
}

// NewCalculator returns Coefficient behind a memo cache.
// Invalid inputs are reported on every call and never cached.
func NewCalculator(opts ...memo.Option) *memo.Fallible[uint64, uint64, uint64] {
	return memo.NewFallible(Coefficient, opts...)
}

// NewCalculatorWithStore is NewCalculator over the given store.
func NewCalculatorWithStore(
	store memo.Store[memo.Key[uint64, uint64], uint64],
	opts ...memo.Option,
) *memo.Fallible[uint64, uint64, uint64] {
	return memo.NewFallibleWithStore(Coefficient, store, opts...)
}
