/*
Package luwak provides generic functional primitives: an optional value,
fallible and infallible functional types, and collection helpers built on
them.

# Overview

Go functions report failure through a returned error, which makes a plain
func(T) bool useless for a test that can fail. Luwak keeps the two shapes
apart: Predicate, Function, Consumer and Supplier cannot fail, while their
Checked counterparts return an error. Checked operations compose with each
other first and are adapted to the infallible shape only at the edge, where
Map, Filter, AnyMatch and FindAny expect them.

# Quick Example

	nums := []int{1, 2, 3, 4}

	evens := luwak.Filter(nums, func(x int) bool { return x%2 == 0 })  // [2 4]
	tens := luwak.Map(evens, func(x int) int { return x * 10 })        // [20 40]
	big := luwak.AnyMatch(nums, func(x int) bool { return x > 3 })     // true
	none := luwak.FindAny([]int{}, luwak.Always[int]())                 // Option.empty

# Core Concepts

Option: zero or one value:

	luwak.Of(v)          // present, panics on nil
	luwak.Empty[T]()     // empty
	luwak.OfOK(v, ok)    // from a comma-ok result
	opt.Get()            // value or ErrNoSuchElement
	opt.OrElse(fallback) // value or fallback

Composition: predicates, functions and consumers combine into new values:

	valid := notEmpty.And(shortEnough).Or(isAdmin)
	parse := luwak.AndThen(strings.TrimSpace, strconv.Quote)
	audit := record.AndThen(notify) // notify is skipped if record fails

Checked to unchecked: a failure inside Map or Filter aborts the whole call
and is recovered as the original error:

	err := luwak.CatchUnchecked(func() {
	    out = luwak.Map(paths, readFile.Unchecked())
	})

# Available Operations

Sequences ([]T):
  - Map, Filter, AnyMatch, FindAny

Sets (*Set[T]):
  - MapSet, FilterSet, AnyMatchSet, FindAnySet

Streams (iter.Seq[T]):
  - FindAnySeq

# Errors

Nil collections, nil behaviors and nil composition partners are programming
errors: they panic with an error wrapping ErrNilArgument before any element
is looked at. Of panics with ErrNilValue. An empty Option is not an error;
only Get turns it into ErrNoSuchElement. Failures of checked operations are
never wrapped, logged or swallowed unless the caller asks for it with
WithLogging.

# Package Import

	import "github.com/Pure-Company/luwak"
*/
package luwak
