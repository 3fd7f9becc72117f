package memo

// Store is the write-once backend of a memo cache.
//
// A key that has been inserted keeps its value for the lifetime of the store:
// InsertIfAbsent never overwrites and nothing is ever removed.
type Store[K comparable, V any] interface {
	// Load returns the value stored under key.
	Load(key K) (value V, ok bool)
	// InsertIfAbsent stores value under key unless key is already present.
	// It reports whether the value was inserted.
	InsertIfAbsent(key K, value V) (inserted bool)
	// Len returns the number of stored entries.
	Len() int
	// Range calls fn for every entry until fn returns false. Order is unspecified.
	Range(fn func(key K, value V) bool)
}

var _ Store[Key[int, int], int] = MapStore[Key[int, int], int]{}

// MapStore is a Store over a plain Go map. It is not safe for concurrent use.
type MapStore[K comparable, V any] struct {
	m map[K]V
}

func NewMapStore[K comparable, V any]() MapStore[K, V] {
	return MapStore[K, V]{m: make(map[K]V)}
}

func (s MapStore[K, V]) Load(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s MapStore[K, V]) InsertIfAbsent(key K, value V) bool {
	if _, ok := s.m[key]; ok {
		return false
	}
	s.m[key] = value
	return true
}

func (s MapStore[K, V]) Len() int {
	return len(s.m)
}

func (s MapStore[K, V]) Range(fn func(K, V) bool) {
	for k, v := range s.m {
		if !fn(k, v) {
			return
		}
	}
}
