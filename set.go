package luwak

import (
	"iter"
	"maps"
	"slices"
)

// Set is an immutable snapshot of unique elements. Iteration order is
// unspecified. A nil *Set is an absent set, not an empty one: its accessors
// panic with ErrNilArgument.
type Set[T comparable] struct {
	items map[T]struct{}
}

// SetOf returns a set holding the given items. Duplicates are dropped.
func SetOf[T comparable](items ...T) *Set[T] {
	m := make(map[T]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return &Set[T]{items: m}
}

// SetFrom collects seq into a set.
func SetFrom[T comparable](seq iter.Seq[T]) *Set[T] {
	if seq == nil {
		panic(nilArgument("seq"))
	}
	m := make(map[T]struct{})
	for it := range seq {
		m[it] = struct{}{}
	}
	return &Set[T]{items: m}
}

func (s *Set[T]) mustExist() {
	if s == nil {
		panic(nilArgument("set"))
	}
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	s.mustExist()
	return len(s.items)
}

// Contains reports whether t is an element of s.
func (s *Set[T]) Contains(t T) bool {
	s.mustExist()
	_, ok := s.items[t]
	return ok
}

// All returns an iterator over the elements of s.
func (s *Set[T]) All() iter.Seq[T] {
	s.mustExist()
	return maps.Keys(s.items)
}

// Slice returns the elements of s in a new slice.
func (s *Set[T]) Slice() []T {
	s.mustExist()
	return slices.Collect(maps.Keys(s.items))
}

// Equal reports whether s and other hold the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for it := range s.items {
		if _, ok := other.items[it]; !ok {
			return false
		}
	}
	return true
}
