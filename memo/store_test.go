package memo_test

import (
	"testing"

	"github.com/on-the-ground/memocache/memo"

	"github.com/stretchr/testify/assert"
)

func stores() map[string]func() memo.Store[memo.Key[int, int], string] {
	return map[string]func() memo.Store[memo.Key[int, int], string]{
		"map": func() memo.Store[memo.Key[int, int], string] {
			return memo.NewMapStore[memo.Key[int, int], string]()
		},
		"trie": func() memo.Store[memo.Key[int, int], string] {
			return memo.NewTrieStore[int, int, string]()
		},
		"sharded": func() memo.Store[memo.Key[int, int], string] {
			return memo.NewShardedStore[int, int, string](4)
		},
		"single shard": func() memo.Store[memo.Key[int, int], string] {
			return memo.NewShardedStore[int, int, string](1)
		},
	}
}

func TestStore_WriteOnce(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, ok := s.Load(memo.KeyOf(1, 23))
			assert.False(t, ok)

			assert.True(t, s.InsertIfAbsent(memo.KeyOf(1, 23), "first"))
			assert.False(t, s.InsertIfAbsent(memo.KeyOf(1, 23), "second"))

			v, ok := s.Load(memo.KeyOf(1, 23))
			assert.True(t, ok)
			assert.Equal(t, "first", v)

			_, ok = s.Load(memo.KeyOf(12, 3))
			assert.False(t, ok)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_Range(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			s.InsertIfAbsent(memo.KeyOf(1, 2), "a")
			s.InsertIfAbsent(memo.KeyOf(1, 3), "b")
			s.InsertIfAbsent(memo.KeyOf(2, 1), "c")
			assert.Equal(t, 3, s.Len())

			got := map[memo.Key[int, int]]string{}
			s.Range(func(k memo.Key[int, int], v string) bool {
				got[k] = v
				return true
			})
			assert.Equal(t, map[memo.Key[int, int]]string{
				memo.KeyOf(1, 2): "a",
				memo.KeyOf(1, 3): "b",
				memo.KeyOf(2, 1): "c",
			}, got)

			visited := 0
			s.Range(func(memo.Key[int, int], string) bool {
				visited++
				return false
			})
			assert.Equal(t, 1, visited)
		})
	}
}

func TestStore_BacksCache(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			count := 0
			cache := memo.NewWithStore(func(a, b int) string {
				count++
				return memo.KeyOf(a, b).Encode()
			}, newStore())

			assert.Equal(t, "5:int=1int=23", cache.Value(1, 23))
			assert.Equal(t, "6:int=12int=3", cache.Value(12, 3))
			assert.Equal(t, "5:int=1int=23", cache.Value(1, 23))
			assert.Equal(t, 2, count)
			assert.Equal(t, 2, cache.Len())
		})
	}
}

func TestShardedStore_PanicsOnNonPositiveShards(t *testing.T) {
	assert.Panics(t, func() {
		memo.NewShardedStore[int, int, int](0)
	})
}
