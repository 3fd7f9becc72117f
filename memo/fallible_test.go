package memo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/memocache/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOdd = errors.New("odd sum")

func TestFallible_FailureIsNotCached(t *testing.T) {
	count := 0
	fail := true
	cache := memo.NewFallible(func(a, b int) (int, error) {
		count++
		if fail {
			return 0, errOdd
		}
		return a + b, nil
	})

	_, err := cache.Value(1, 2)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, cache.Len())

	// retried, not replayed
	_, err = cache.Value(1, 2)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 2, count)

	fail = false
	v, err := cache.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, count)

	v, err = cache.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, count)

	stats := cache.Stats()
	assert.Equal(t, uint64(2), stats.Failures)
	assert.Equal(t, uint64(3), stats.Computations)
	assert.Equal(t, 1, stats.Entries)
}

func TestFallible_PrefillAggregatesFailures(t *testing.T) {
	cache := memo.NewFallible(func(a, b int) (int, error) {
		if (a+b)%2 == 1 {
			return 0, fmt.Errorf("%w: %d", errOdd, a+b)
		}
		return a + b, nil
	})

	err := cache.Prefill(
		memo.KeyOf(1, 1),
		memo.KeyOf(1, 2),
		memo.KeyOf(2, 2),
		memo.KeyOf(2, 3),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errOdd)
	assert.Contains(t, err.Error(), "prefill (1, 2)")
	assert.Contains(t, err.Error(), "prefill (2, 3)")
	assert.Contains(t, err.Error(), "2 errors occurred")

	assert.Equal(t, 2, cache.Len())
	assert.ElementsMatch(t, []memo.Key[int, int]{memo.KeyOf(1, 1), memo.KeyOf(2, 2)}, cache.Keys())
}

func TestFallible_PrefillWithoutFailures(t *testing.T) {
	cache := memo.NewFallible(func(a, b int) (int, error) { return a * b, nil })

	require.NoError(t, cache.Prefill(memo.KeyOf(2, 3), memo.KeyOf(4, 5)))
	assert.Equal(t, map[memo.Key[int, int]]int{
		memo.KeyOf(2, 3): 6,
		memo.KeyOf(4, 5): 20,
	}, cache.Snapshot())
}
