package memo_test

import (
	"testing"

	"github.com/on-the-ground/memocache/memo"
)

func naivePascal(n, k uint64) uint64 {
	if k == 0 || k == n {
		return 1
	}
	return naivePascal(n-1, k-1) + naivePascal(n-1, k)
}

func BenchmarkNaivePascal20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naivePascal(20, 10)
	}
}

func BenchmarkMemoizedPascal20(b *testing.B) {
	var pascal func(uint64, uint64) uint64
	pascal = memo.Memoize2(func(n, k uint64) uint64 {
		if k == 0 || k == n {
			return 1
		}
		return pascal(n-1, k-1) + pascal(n-1, k)
	})

	for i := 0; i < b.N; i++ {
		_ = pascal(20, 10)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	stores := map[string]func() memo.Store[memo.Key[string, string], int]{
		"map":     func() memo.Store[memo.Key[string, string], int] { return memo.NewMapStore[memo.Key[string, string], int]() },
		"trie":    func() memo.Store[memo.Key[string, string], int] { return memo.NewTrieStore[string, string, int]() },
		"sharded": func() memo.Store[memo.Key[string, string], int] { return memo.NewShardedStore[string, string, int](8) },
	}
	for name, newStore := range stores {
		b.Run(name, func(b *testing.B) {
			var lev *memo.Cache[string, string, int]
			lev = memo.NewWithStore(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev.Value(a[1:], b[1:])
				}
				return 1 + min(
					lev.Value(a[1:], b),
					lev.Value(a, b[1:]),
					lev.Value(a[1:], b[1:]),
				)
			}, newStore())

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev.Value("kitten", "sitting")
			}
		})
	}
}

type Point struct {
	X, Y float64
}

func BenchmarkMemoizedDist(b *testing.B) {
	dist := memo.Memoize2(func(p1, p2 Point) float64 {
		dx := p1.X - p2.X
		dy := p1.Y - p2.Y
		return dx*dx + dy*dy
	}, memo.WithConcurrency(4))

	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = dist(p1, p2)
		}
	})
}
