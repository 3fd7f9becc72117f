package memo

import "sync/atomic"

// Stats is a point-in-time view of a cache's counters.
type Stats struct {
	// Hits counts Value calls answered from the store.
	Hits uint64
	// Misses counts Value calls that found no stored entry.
	Misses uint64
	// Computations counts invocations of the computation.
	Computations uint64
	// Failures counts computations that returned an error.
	Failures uint64
	// Entries is the number of stored entries.
	Entries int
}

type counters struct {
	hits         atomic.Uint64
	misses       atomic.Uint64
	computations atomic.Uint64
	failures     atomic.Uint64
}

func (c *counters) snapshot(entries int) Stats {
	return Stats{
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		Computations: c.computations.Load(),
		Failures:     c.failures.Load(),
		Entries:      entries,
	}
}
