package luwak

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilArgument is raised when a required collection, behavior or
	// composition partner is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrNilValue is raised when a present Option is built from a nil value.
	ErrNilValue = errors.New("nil value")

	// ErrNoSuchElement is returned when the value of an empty Option is requested.
	ErrNoSuchElement = errors.New("no such element")
)

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

// UncheckedError carries the failure of a checked operation that was adapted
// to an unchecked one. It travels as a panic value; use CatchUnchecked to
// turn it back into the original error.
//
// Example:
//
//	err := CatchUnchecked(func() {
//	    Map(paths, CheckedFunction[string, []byte](os.ReadFile).Unchecked())
//	})
type UncheckedError struct {
	err error
}

func (e *UncheckedError) Error() string {
	return "unchecked: " + e.err.Error()
}

// Unwrap returns the original failure.
func (e *UncheckedError) Unwrap() error {
	return e.err
}

// isNil reports whether v is a nil pointer, map, slice, channel, func or
// interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
