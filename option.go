package luwak

import (
	"fmt"
	"reflect"
)

// Option holds zero or one value. An Option is either present, holding
// exactly one non-nil value, or empty.
//
// The zero Option is empty. An empty Option always stores the zero value of
// T, so for comparable T two Options are == exactly when both are empty or
// both hold equal values.
//
// Example:
//
//	name := Of("alice")
//	fmt.Println(name.OrElse("anonymous")) // alice
//
//	missing := Empty[string]()
//	_, err := missing.Get() // ErrNoSuchElement
type Option[T any] struct {
	value   T
	present bool
}

// Of returns a present Option holding v.
// It panics with ErrNilValue if v is a nil pointer, map, slice, channel,
// func or interface.
func Of[T any](v T) Option[T] {
	if isNil(v) {
		panic(fmt.Errorf("%w: Of requires a non-nil value", ErrNilValue))
	}
	return Option[T]{value: v, present: true}
}

// OfNillable returns an empty Option for nil-equivalent values and a present
// one otherwise.
func OfNillable[T any](v T) Option[T] {
	if isNil(v) {
		return Empty[T]()
	}
	return Option[T]{value: v, present: true}
}

// OfOK mirrors a comma-ok result:
//
//	v, ok := m[key]
//	opt := OfOK(v, ok)
func OfOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

// Empty returns an empty Option.
func Empty[T any]() Option[T] {
	return Option[T]{}
}

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether o holds no value.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value, or ErrNoSuchElement if o is empty.
func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoSuchElement
	}
	return o.value, nil
}

// MustGet returns the value and panics with ErrNoSuchElement if o is empty.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(ErrNoSuchElement)
	}
	return o.value
}

// Unwrap returns the value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value if present, otherwise the result of supplier.
// supplier is only invoked for an empty Option.
func (o Option[T]) OrElseGet(supplier Supplier[T]) T {
	if supplier == nil {
		panic(nilArgument("supplier"))
	}
	if o.present {
		return o.value
	}
	return supplier()
}

// IfPresent passes the value to consumer if o is present.
func (o Option[T]) IfPresent(consumer Consumer[T]) {
	if consumer == nil {
		panic(nilArgument("consumer"))
	}
	if o.present {
		consumer(o.value)
	}
}

// Filter returns o if it is present and its value matches predicate,
// otherwise an empty Option.
func (o Option[T]) Filter(predicate Predicate[T]) Option[T] {
	if predicate == nil {
		panic(nilArgument("predicate"))
	}
	if o.present && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

// Equal reports whether o and other are both empty, or both present with
// equal values. Comparable values are compared with ==, others with
// reflect.DeepEqual.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return valuesEqual(o.value, other.value)
}

func valuesEqual(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.present {
		return "Option.empty"
	}
	return fmt.Sprintf("Option[%v]", o.value)
}

// MapOption applies mapper to the value of o if present. A nil result
// yields an empty Option.
func MapOption[T, R any](o Option[T], mapper Function[T, R]) Option[R] {
	if mapper == nil {
		panic(nilArgument("mapper"))
	}
	if !o.present {
		return Empty[R]()
	}
	return OfNillable(mapper(o.value))
}

// FlatMapOption applies mapper to the value of o if present and returns its
// result unwrapped.
func FlatMapOption[T, R any](o Option[T], mapper Function[T, Option[R]]) Option[R] {
	if mapper == nil {
		panic(nilArgument("mapper"))
	}
	if !o.present {
		return Empty[R]()
	}
	return mapper(o.value)
}
