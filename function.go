package luwak

// ============================================================================
// Predicate
// ============================================================================

// Predicate is a functional binding for a boolean test of one value.
// Predicates are expected to be pure: Test must not mutate its argument or
// any outside state.
//
// Example:
//
//	even := Predicate[int](func(x int) bool { return x%2 == 0 })
//	positiveEven := even.And(func(x int) bool { return x > 0 })
type Predicate[T any] func(t T) bool

// Test evaluates the predicate on t.
func (p Predicate[T]) Test(t T) bool {
	return p(t)
}

// And returns a predicate that holds when both p and other hold.
// other is not evaluated when p is false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	if other == nil {
		panic(nilArgument("other"))
	}
	return func(t T) bool {
		return p(t) && other(t)
	}
}

// Or returns a predicate that holds when p or other holds.
// other is not evaluated when p is true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	if other == nil {
		panic(nilArgument("other"))
	}
	return func(t T) bool {
		return p(t) || other(t)
	}
}

// Negate returns the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) bool {
		return !p(t)
	}
}

// Checked lifts p into a CheckedPredicate that never fails.
func (p Predicate[T]) Checked() CheckedPredicate[T] {
	return func(t T) (bool, error) {
		return p(t), nil
	}
}

// Not returns the negation of p.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		panic(nilArgument("predicate"))
	}
	return p.Negate()
}

// IsEqual returns a predicate matching values equal to target.
func IsEqual[T comparable](target T) Predicate[T] {
	return func(t T) bool {
		return t == target
	}
}

// Always returns a predicate that holds for every value.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never returns a predicate that holds for no value.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// ============================================================================
// Function
// ============================================================================

// Function is a functional binding for a pure mapping from T to R.
//
// Go methods cannot introduce type parameters, so composition lives in the
// package functions AndThen and Compose.
type Function[T, R any] func(t T) R

// Apply applies f to t.
func (f Function[T, R]) Apply(t T) R {
	return f(t)
}

// AndThen returns a function that applies f, then feeds the result to after.
func AndThen[T, R, V any](f Function[T, R], after Function[R, V]) Function[T, V] {
	if f == nil {
		panic(nilArgument("function"))
	}
	if after == nil {
		panic(nilArgument("after"))
	}
	return func(t T) V {
		return after(f(t))
	}
}

// Compose returns a function that applies before, then feeds the result to f.
func Compose[V, T, R any](f Function[T, R], before Function[V, T]) Function[V, R] {
	if f == nil {
		panic(nilArgument("function"))
	}
	if before == nil {
		panic(nilArgument("before"))
	}
	return func(v V) R {
		return f(before(v))
	}
}

// Identity returns a function that always returns its input.
func Identity[T any]() Function[T, T] {
	return func(t T) T { return t }
}

// ============================================================================
// Consumer and Supplier
// ============================================================================

// Consumer is a functional binding for a side-effecting operation on one
// value. It cannot report failure; see CheckedConsumer for that.
type Consumer[T any] func(t T)

// Accept performs the operation on t.
func (c Consumer[T]) Accept(t T) {
	c(t)
}

// AndThen returns a consumer that performs c, then after, on the same input.
func (c Consumer[T]) AndThen(after Consumer[T]) Consumer[T] {
	if after == nil {
		panic(nilArgument("after"))
	}
	return func(t T) {
		c(t)
		after(t)
	}
}

// Checked lifts c into a CheckedConsumer that never fails.
func (c Consumer[T]) Checked() CheckedConsumer[T] {
	return func(t T) error {
		c(t)
		return nil
	}
}

// Supplier is a functional binding for a producer of values.
type Supplier[T any] func() T

// Get returns a value.
func (s Supplier[T]) Get() T {
	return s()
}
