package luwak

import "iter"

// ============================================================================
// Sequences
// ============================================================================

// Map returns a new slice holding mapper applied to every element of list,
// in order. The result does not share memory with list.
//
// Map panics with ErrNilArgument if list or mapper is nil. An empty,
// non-nil list yields an empty result.
func Map[T, R any](list []T, mapper Function[T, R]) []R {
	if list == nil {
		panic(nilArgument("list"))
	}
	if mapper == nil {
		panic(nilArgument("mapper"))
	}

	out := make([]R, 0, len(list))
	for _, t := range list {
		out = append(out, mapper(t))
	}
	return out
}

// Filter returns a new slice holding the elements of list that match
// predicate, in order.
func Filter[T any](list []T, predicate Predicate[T]) []T {
	if list == nil {
		panic(nilArgument("list"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	out := make([]T, 0)
	for _, t := range list {
		if predicate(t) {
			out = append(out, t)
		}
	}
	return out
}

// AnyMatch reports whether any element of list matches predicate. It stops
// at the first match; for an empty list the predicate is never invoked.
func AnyMatch[T any](list []T, predicate Predicate[T]) bool {
	if list == nil {
		panic(nilArgument("list"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	for _, t := range list {
		if predicate(t) {
			return true
		}
	}
	return false
}

// FindAny returns some element of list matching predicate, or an empty
// Option when there is none.
//
// Which matching element is returned is unspecified; callers must not rely
// on it being the first.
func FindAny[T any](list []T, predicate Predicate[T]) Option[T] {
	if list == nil {
		panic(nilArgument("list"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	for _, t := range list {
		if predicate(t) {
			return Of(t)
		}
	}
	return Empty[T]()
}

// ============================================================================
// Sets
// ============================================================================

// MapSet returns a new set holding mapper applied to every element of set.
// Elements that map to equal results collapse into one.
func MapSet[T, R comparable](set *Set[T], mapper Function[T, R]) *Set[R] {
	if set == nil {
		panic(nilArgument("set"))
	}
	if mapper == nil {
		panic(nilArgument("mapper"))
	}

	out := make(map[R]struct{}, len(set.items))
	for t := range set.items {
		out[mapper(t)] = struct{}{}
	}
	return &Set[R]{items: out}
}

// FilterSet returns a new set holding the elements of set that match predicate.
func FilterSet[T comparable](set *Set[T], predicate Predicate[T]) *Set[T] {
	if set == nil {
		panic(nilArgument("set"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	out := make(map[T]struct{})
	for t := range set.items {
		if predicate(t) {
			out[t] = struct{}{}
		}
	}
	return &Set[T]{items: out}
}

// AnyMatchSet reports whether any element of set matches predicate. It stops
// at the first match; for an empty set the predicate is never invoked.
func AnyMatchSet[T comparable](set *Set[T], predicate Predicate[T]) bool {
	if set == nil {
		panic(nilArgument("set"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	for t := range set.items {
		if predicate(t) {
			return true
		}
	}
	return false
}

// FindAnySet returns some element of set matching predicate, or an empty
// Option when there is none. Repeated calls on the same set may return
// different elements.
func FindAnySet[T comparable](set *Set[T], predicate Predicate[T]) Option[T] {
	if set == nil {
		panic(nilArgument("set"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	for t := range set.items {
		if predicate(t) {
			return Of(t)
		}
	}
	return Empty[T]()
}

// ============================================================================
// Streams
// ============================================================================

// FindAnySeq returns some element of seq matching predicate, or an empty
// Option when there is none. seq is consumed only until a match is found.
func FindAnySeq[T any](seq iter.Seq[T], predicate Predicate[T]) Option[T] {
	if seq == nil {
		panic(nilArgument("seq"))
	}
	if predicate == nil {
		panic(nilArgument("predicate"))
	}

	for t := range seq {
		if predicate(t) {
			return Of(t)
		}
	}
	return Empty[T]()
}
