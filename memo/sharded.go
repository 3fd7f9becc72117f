package memo

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultShards is the shard count used when concurrency is enabled without one.
const DefaultShards = 16

var _ Store[Key[int, int], int] = &ShardedStore[int, int, int]{}

// ShardedStore splits entries over shards, each guarded by its own RWMutex.
// A key's shard is picked by hashing its encoding.
// It is safe for concurrent use.
type ShardedStore[I1, I2 comparable, O any] struct {
	shards []*shard[I1, I2, O]
}

type shard[I1, I2 comparable, O any] struct {
	mu sync.RWMutex
	m  map[Key[I1, I2]]O
}

func NewShardedStore[I1, I2 comparable, O any](numShards int) *ShardedStore[I1, I2, O] {
	if numShards <= 0 {
		panic(fmt.Sprintf("numShards should be greater than 0, got %d", numShards))
	}
	shards := make([]*shard[I1, I2, O], numShards)
	for i := range shards {
		shards[i] = &shard[I1, I2, O]{m: make(map[Key[I1, I2]]O)}
	}
	return &ShardedStore[I1, I2, O]{shards: shards}
}

func (s *ShardedStore[I1, I2, O]) shardOf(key Key[I1, I2]) *shard[I1, I2, O] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64String(key.Encode())%uint64(len(s.shards))]
}

func (s *ShardedStore[I1, I2, O]) Load(key Key[I1, I2]) (O, bool) {
	sh := s.shardOf(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

func (s *ShardedStore[I1, I2, O]) InsertIfAbsent(key Key[I1, I2], value O) bool {
	sh := s.shardOf(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.m[key]; ok {
		return false
	}
	sh.m[key] = value
	return true
}

func (s *ShardedStore[I1, I2, O]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// Range visits one shard at a time under its read lock.
// fn must not write to the store.
func (s *ShardedStore[I1, I2, O]) Range(fn func(Key[I1, I2], O) bool) {
	for _, sh := range s.shards {
		if !sh.rangeLocked(fn) {
			return
		}
	}
}

func (sh *shard[I1, I2, O]) rangeLocked(fn func(Key[I1, I2], O) bool) bool {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	for k, v := range sh.m {
		if !fn(k, v) {
			return false
		}
	}
	return true
}
