package memo

// Memoize2 returns fn as a memoized function value.
// The returned function can be referenced from inside fn for recursive definitions:
//
//	var fib func(int, int) int
//	fib = memo.Memoize2(func(n, _ int) int { ... fib(n-1, 0) ... })
func Memoize2[I1, I2 comparable, O any](
	fn Computation[I1, I2, O],
	opts ...Option,
) func(I1, I2) O {
	return New(fn, opts...).Value
}

// Memoize2E is Memoize2 for a computation that may fail. Failures are not memoized.
func Memoize2E[I1, I2 comparable, O any](
	fn FallibleComputation[I1, I2, O],
	opts ...Option,
) func(I1, I2) (O, error) {
	return NewFallible(fn, opts...).Value
}
