package memo

import (
	"fmt"
	"strconv"
)

// Key is the composite lookup key of a memo cache.
// It is a comparable struct, so two keys are equal iff both fields are equal.
type Key[I1, I2 comparable] struct {
	First  I1
	Second I2
}

// KeyOf builds the key for the input pair (a, b).
func KeyOf[I1, I2 comparable](a I1, b I2) Key[I1, I2] {
	return Key[I1, I2]{First: a, Second: b}
}

// Encode returns a string form of the key for string-keyed backends.
//
// Each field is tagged with its dynamic type, so 1 and "1" in an any-typed
// field stay apart, and the first field is length-prefixed, so (1, 23) and
// (12, 3) encode to "5:int=1int=23" and "6:int=12int=3". Values are written
// verbatim for strings, through String for fmt.Stringer and through fmt.Sprint
// otherwise. Two keys can only share an encoding if a type's String or fmt
// form maps distinct values to the same text; backends must still compare the
// keys themselves.
func (k Key[I1, I2]) Encode() string {
	first := encodeField(k.First)
	return strconv.Itoa(len(first)) + ":" + first + encodeField(k.Second)
}

// Reflexive reports whether the key equals itself. It is false when a field
// holds a NaN, and such a key can never be found in a store.
func (k Key[I1, I2]) Reflexive() bool {
	return k == k
}

func (k Key[I1, I2]) String() string {
	return fmt.Sprintf("(%v, %v)", k.First, k.Second)
}

func encodeField(v any) string {
	return fmt.Sprintf("%T=", v) + encodeValue(v)
}

func encodeValue(v any) string {
	switch f := v.(type) {
	case string:
		return f
	case fmt.Stringer:
		return f.String()
	case float64:
		// 0 and -0 are the same map key
		if f == 0 {
			return "0"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case float32:
		if f == 0 {
			return "0"
		}
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	default:
		return fmt.Sprint(f)
	}
}
