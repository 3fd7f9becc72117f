package helper

import (
	"fmt"
)

// TypedOf asserts a raw backend value to T.
// A nil raw value is absent (ok is false, err is nil); any other non-T value is an error.
func TypedOf[T any](raw any) (val T, ok bool, err error) {
	if raw == nil {
		return val, false, nil
	}
	val, ok = raw.(T)
	if !ok {
		return val, false, fmt.Errorf("unexpected type: %T", raw)
	}
	return val, true, nil
}

// MustTypedOf is the panic-on-failure variant of TypedOf for values known to be present.
func MustTypedOf[T any](raw any) T {
	val, ok, err := TypedOf[T](raw)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(fmt.Sprintf("missing value of type %T", val))
	}
	return val
}
