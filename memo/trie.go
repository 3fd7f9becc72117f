package memo

var _ Store[Key[int, int], int] = &TrieStore[int, int, int]{}

// TrieStore keeps one map level per argument: first input, then second input.
// Keys need no encoding, so distinct pairs can never collide.
// It is not safe for concurrent use.
type TrieStore[I1, I2 comparable, O any] struct {
	levels map[I1]map[I2]O
	size   int
}

func NewTrieStore[I1, I2 comparable, O any]() *TrieStore[I1, I2, O] {
	return &TrieStore[I1, I2, O]{
		levels: make(map[I1]map[I2]O),
	}
}

func (t *TrieStore[I1, I2, O]) Load(key Key[I1, I2]) (O, bool) {
	leaf, ok := t.levels[key.First]
	if !ok {
		var zero O
		return zero, false
	}
	v, ok := leaf[key.Second]
	return v, ok
}

func (t *TrieStore[I1, I2, O]) InsertIfAbsent(key Key[I1, I2], value O) bool {
	leaf, ok := t.levels[key.First]
	if !ok {
		leaf = make(map[I2]O)
		t.levels[key.First] = leaf
	}
	if _, ok := leaf[key.Second]; ok {
		return false
	}
	leaf[key.Second] = value
	t.size++
	return true
}

func (t *TrieStore[I1, I2, O]) Len() int {
	return t.size
}

func (t *TrieStore[I1, I2, O]) Range(fn func(Key[I1, I2], O) bool) {
	for first, leaf := range t.levels {
		for second, v := range leaf {
			if !fn(KeyOf(first, second), v) {
				return
			}
		}
	}
}
