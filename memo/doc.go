// Package memo memoizes pure functions of two inputs.
//
// A cache owns its computation and a write-once store keyed by the input pair.
// On each request it returns the stored result if present, otherwise it runs
// the computation, stores the result and returns it:
//
//	add := memo.New(func(a, b int) int { return a + b })
//	add.Value(2, 3) // computes 5
//	add.Value(2, 3) // 5 from the store
//
// The computation runs at most once per distinct pair for the lifetime of the
// cache, so the same pair always yields the same value after the first call,
// even if the computation is not actually deterministic.
//
// Keys are Key values used directly as map keys; (1, 23) and (12, 3) never
// share an entry. Key.Encode gives a type-tagged string form for string-keyed
// backends such as memdbstore; it is injective only as far as each input type's
// String or fmt form is, so those backends keep the original key and compare it.
//
// A key holding a NaN is not equal to itself. Such a pair is computed on every
// call and never stored.
//
// Features:
//   - Cache and Memoize2 for infallible computations.
//   - Fallible and Memoize2E for computations returning an error. Errors are
//     propagated and never stored.
//   - MapStore, TrieStore and ShardedStore backends, or any Store implementation.
//   - WithConcurrency for at-most-once computation under concurrent callers.
//
// Entries are never removed. There is no eviction and no persistence.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memo
