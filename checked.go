package luwak

import (
	"errors"

	"go.uber.org/zap"
)

// ============================================================================
// CheckedConsumer
// ============================================================================

// CheckedConsumer is a Consumer that may fail. Failures are returned to the
// caller untouched.
//
// Example:
//
//	save := CheckedConsumer[*Order](repo.Save).
//	    AndThen(notify).
//	    WithLogging(logger)
//
//	if err := save.Accept(order); err != nil {
//	    return err
//	}
type CheckedConsumer[T any] func(t T) error

// Accept performs the operation on t.
func (c CheckedConsumer[T]) Accept(t T) error {
	return c(t)
}

// AndThen returns a consumer that performs c, then after, on the same input.
// If c fails, after is not performed and the error of c is returned as-is.
func (c CheckedConsumer[T]) AndThen(after CheckedConsumer[T]) CheckedConsumer[T] {
	if after == nil {
		panic(nilArgument("after"))
	}
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return after(t)
	}
}

// Unchecked adapts c to a Consumer. A failure aborts with a panic carrying
// an *UncheckedError.
func (c CheckedConsumer[T]) Unchecked() Consumer[T] {
	return func(t T) {
		if err := c(t); err != nil {
			panic(&UncheckedError{err: err})
		}
	}
}

// WithLogging logs failures of c at warn level. The error is returned unchanged.
func (c CheckedConsumer[T]) WithLogging(logger *zap.Logger) CheckedConsumer[T] {
	if logger == nil {
		panic(nilArgument("logger"))
	}
	return func(t T) error {
		err := c(t)
		if err != nil {
			logger.Warn("checked consumer failed", zap.Any("input", t), zap.Error(err))
		}
		return err
	}
}

// ============================================================================
// CheckedFunction
// ============================================================================

// CheckedFunction is a Function that may fail.
type CheckedFunction[T, R any] func(t T) (R, error)

// Apply applies f to t.
func (f CheckedFunction[T, R]) Apply(t T) (R, error) {
	return f(t)
}

// Unchecked adapts f to a Function. A failure aborts with a panic carrying
// an *UncheckedError.
func (f CheckedFunction[T, R]) Unchecked() Function[T, R] {
	return func(t T) R {
		r, err := f(t)
		if err != nil {
			panic(&UncheckedError{err: err})
		}
		return r
	}
}

// WithLogging logs failures of f at warn level. The error is returned unchanged.
func (f CheckedFunction[T, R]) WithLogging(logger *zap.Logger) CheckedFunction[T, R] {
	if logger == nil {
		panic(nilArgument("logger"))
	}
	return func(t T) (R, error) {
		r, err := f(t)
		if err != nil {
			logger.Warn("checked function failed", zap.Any("input", t), zap.Error(err))
		}
		return r, err
	}
}

// CheckedAndThen returns a function that applies f, then feeds the result to
// after. If f fails, after is not applied.
func CheckedAndThen[T, R, V any](f CheckedFunction[T, R], after CheckedFunction[R, V]) CheckedFunction[T, V] {
	if f == nil {
		panic(nilArgument("function"))
	}
	if after == nil {
		panic(nilArgument("after"))
	}
	return func(t T) (V, error) {
		r, err := f(t)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// Lift turns f into a CheckedFunction that never fails.
func Lift[T, R any](f Function[T, R]) CheckedFunction[T, R] {
	if f == nil {
		panic(nilArgument("function"))
	}
	return func(t T) (R, error) {
		return f(t), nil
	}
}

// ============================================================================
// CheckedPredicate
// ============================================================================

// CheckedPredicate is a Predicate that may fail.
type CheckedPredicate[T any] func(t T) (bool, error)

// Test evaluates the predicate on t.
func (p CheckedPredicate[T]) Test(t T) (bool, error) {
	return p(t)
}

// And returns a predicate that holds when both p and other hold.
// other is not evaluated when p is false or fails.
func (p CheckedPredicate[T]) And(other CheckedPredicate[T]) CheckedPredicate[T] {
	if other == nil {
		panic(nilArgument("other"))
	}
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || !ok {
			return false, err
		}
		return other(t)
	}
}

// Or returns a predicate that holds when p or other holds.
// other is not evaluated when p is true or fails.
func (p CheckedPredicate[T]) Or(other CheckedPredicate[T]) CheckedPredicate[T] {
	if other == nil {
		panic(nilArgument("other"))
	}
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other(t)
	}
}

// Negate returns the logical negation of p. Failures pass through.
func (p CheckedPredicate[T]) Negate() CheckedPredicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Unchecked adapts p to a Predicate. A failure aborts with a panic carrying
// an *UncheckedError.
func (p CheckedPredicate[T]) Unchecked() Predicate[T] {
	return func(t T) bool {
		ok, err := p(t)
		if err != nil {
			panic(&UncheckedError{err: err})
		}
		return ok
	}
}

// ============================================================================
// CheckedSupplier
// ============================================================================

// CheckedSupplier is a Supplier that may fail.
type CheckedSupplier[T any] func() (T, error)

// Get returns a value or the failure that prevented producing one.
func (s CheckedSupplier[T]) Get() (T, error) {
	return s()
}

// Unchecked adapts s to a Supplier. A failure aborts with a panic carrying
// an *UncheckedError.
func (s CheckedSupplier[T]) Unchecked() Supplier[T] {
	return func() T {
		v, err := s()
		if err != nil {
			panic(&UncheckedError{err: err})
		}
		return v
	}
}

// ============================================================================
// Recovery
// ============================================================================

// CatchUnchecked runs fn and returns the original failure of any checked
// operation that aborted inside it through Unchecked. Other panics are
// re-raised.
func CatchUnchecked(fn func()) (err error) {
	if fn == nil {
		panic(nilArgument("fn"))
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(error); ok {
			var ue *UncheckedError
			if errors.As(re, &ue) {
				err = ue.Unwrap()
				return
			}
		}
		panic(r)
	}()
	fn()
	return nil
}
