package luwak

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Get(t *testing.T) {
	o := Of(42)

	v, err := o.Get()

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, o.IsPresent())
	assert.False(t, o.IsEmpty())
	assert.Equal(t, 42, o.MustGet())
}

func TestOf_NilValue(t *testing.T) {
	var (
		ptr   *int
		m     map[string]int
		s     []int
		ch    chan int
		fn    func()
		iface error
	)

	assert.ErrorIs(t, recoverErr(func() { Of(ptr) }), ErrNilValue)
	assert.ErrorIs(t, recoverErr(func() { Of(m) }), ErrNilValue)
	assert.ErrorIs(t, recoverErr(func() { Of(s) }), ErrNilValue)
	assert.ErrorIs(t, recoverErr(func() { Of(ch) }), ErrNilValue)
	assert.ErrorIs(t, recoverErr(func() { Of(fn) }), ErrNilValue)
	assert.ErrorIs(t, recoverErr(func() { Of(iface) }), ErrNilValue)
}

func TestOf_ZeroValuesArePresent(t *testing.T) {
	assert.True(t, Of(0).IsPresent())
	assert.True(t, Of("").IsPresent())
	assert.True(t, Of([]int{}).IsPresent())
}

func TestEmpty_Get(t *testing.T) {
	o := Empty[string]()

	_, err := o.Get()

	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.True(t, o.IsEmpty())
	assert.ErrorIs(t, recoverErr(func() { o.MustGet() }), ErrNoSuchElement)
}

func TestZeroOptionIsEmpty(t *testing.T) {
	var o Option[int]

	assert.True(t, o.IsEmpty())
	assert.Equal(t, Empty[int](), o)
}

func TestOfNillable(t *testing.T) {
	var ptr *int
	x := 3

	assert.True(t, OfNillable(ptr).IsEmpty())
	assert.Equal(t, &x, OfNillable(&x).MustGet())
}

func TestOfOK(t *testing.T) {
	m := map[string]int{"a": 1}

	a, ok := m["a"]
	assert.Equal(t, Of(1), OfOK(a, ok))

	b, ok := m["b"]
	assert.True(t, OfOK(b, ok).IsEmpty())

	t.Setenv("LUWAK_TEST_HOME", "/home/luwak")
	home, ok := os.LookupEnv("LUWAK_TEST_HOME")
	assert.Equal(t, Of("/home/luwak"), OfOK(home, ok))
}

func TestOfOK_DropsValueWhenAbsent(t *testing.T) {
	assert.Equal(t, Empty[int](), OfOK(99, false))
}

func TestOption_OrElse(t *testing.T) {
	assert.Equal(t, "x", Of("x").OrElse("y"))
	assert.Equal(t, "y", Empty[string]().OrElse("y"))
}

func TestOption_OrElseGet(t *testing.T) {
	supplied := false
	supplier := Supplier[int](func() int {
		supplied = true
		return 9
	})

	assert.Equal(t, 1, Of(1).OrElseGet(supplier))
	assert.False(t, supplied)

	assert.Equal(t, 9, Empty[int]().OrElseGet(supplier))
	assert.True(t, supplied)
}

func TestOption_Unwrap(t *testing.T) {
	v, ok := Of(5).Unwrap()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = Empty[int]().Unwrap()
	assert.False(t, ok)
}

func TestOption_IfPresent(t *testing.T) {
	var seen []string
	collect := Consumer[string](func(s string) { seen = append(seen, s) })

	Of("a").IfPresent(collect)
	Empty[string]().IfPresent(collect)

	assert.Equal(t, []string{"a"}, seen)
}

func TestOption_Filter(t *testing.T) {
	even := Predicate[int](func(x int) bool { return x%2 == 0 })

	assert.Equal(t, Of(2), Of(2).Filter(even))
	assert.True(t, Of(3).Filter(even).IsEmpty())
	assert.True(t, Empty[int]().Filter(even).IsEmpty())
}

func TestMapOption(t *testing.T) {
	length := Function[string, int](func(s string) int { return len(s) })

	assert.Equal(t, Of(3), MapOption(Of("abc"), length))
	assert.Equal(t, Empty[int](), MapOption(Empty[string](), length))

	toNil := Function[string, *int](func(string) *int { return nil })
	assert.True(t, MapOption(Of("abc"), toNil).IsEmpty())
}

func TestFlatMapOption(t *testing.T) {
	positive := Function[int, Option[int]](func(x int) Option[int] {
		if x > 0 {
			return Of(x)
		}
		return Empty[int]()
	})

	assert.Equal(t, Of(4), FlatMapOption(Of(4), positive))
	assert.True(t, FlatMapOption(Of(-4), positive).IsEmpty())
	assert.True(t, FlatMapOption(Empty[int](), positive).IsEmpty())
}

func TestOption_Equality(t *testing.T) {
	testCases := []struct {
		Name  string
		A, B  Option[string]
		Equal bool
	}{
		{Name: "both empty", A: Empty[string](), B: Empty[string](), Equal: true},
		{Name: "same value", A: Of("a"), B: Of("a"), Equal: true},
		{Name: "different values", A: Of("a"), B: Of("b"), Equal: false},
		{Name: "present and empty", A: Of("a"), B: Empty[string](), Equal: false},
		{Name: "present zero and empty", A: Of(""), B: Empty[string](), Equal: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert.Equal(t, testCase.Equal, testCase.A.Equal(testCase.B))
			assert.Equal(t, testCase.Equal, testCase.B.Equal(testCase.A))
			assert.Equal(t, testCase.Equal, testCase.A == testCase.B)
		})
	}
}

func TestOption_EqualityOfIncomparableValues(t *testing.T) {
	type tagged struct {
		Tags []string
	}
	testCases := []struct {
		Name  string
		A, B  Option[any]
		Equal bool
	}{
		{Name: "equal slices", A: Of[any]([]int{1}), B: Of[any]([]int{1}), Equal: true},
		{Name: "different slices", A: Of[any]([]int{1}), B: Of[any]([]int{2}), Equal: false},
		{Name: "equal maps", A: Of[any](map[string]int{"a": 1}), B: Of[any](map[string]int{"a": 1}), Equal: true},
		{Name: "structs holding slices", A: Of[any](tagged{[]string{"x"}}), B: Of[any](tagged{[]string{"x"}}), Equal: true},
		{Name: "different dynamic types", A: Of[any]([]int{1}), B: Of[any]([]int64{1}), Equal: false},
		{Name: "slice and empty", A: Of[any]([]int{1}), B: Empty[any](), Equal: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert.Equal(t, testCase.Equal, testCase.A.Equal(testCase.B))
			assert.Equal(t, testCase.Equal, testCase.B.Equal(testCase.A))
		})
	}
}

func TestOption_EqualityOfSlices(t *testing.T) {
	assert.True(t, Of([]int{1}).Equal(Of([]int{1})))
	assert.False(t, Of([]int{1}).Equal(Of([]int{2})))
	assert.True(t, Of([]int{}).Equal(Of([]int{})))
}

func TestOption_EqualityOfPointers(t *testing.T) {
	x, y := 1, 1

	assert.True(t, Of(&x).Equal(Of(&x)))
	assert.False(t, Of(&x).Equal(Of(&y)))
}

func TestOption_AsMapKey(t *testing.T) {
	counts := map[Option[int]]int{}
	counts[Of(1)]++
	counts[Of(1)]++
	counts[Empty[int]()]++
	counts[OfOK(7, false)]++

	assert.Equal(t, 2, counts[Of(1)])
	assert.Equal(t, 2, counts[Empty[int]()])
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "Option[7]", Of(7).String())
	assert.Equal(t, "Option.empty", Empty[int]().String())
}

func TestOption_NilBehaviors(t *testing.T) {
	o := Of(1)

	assert.ErrorIs(t, recoverErr(func() { o.OrElseGet(nil) }), ErrNilArgument)
	assert.ErrorIs(t, recoverErr(func() { o.IfPresent(nil) }), ErrNilArgument)
	assert.ErrorIs(t, recoverErr(func() { o.Filter(nil) }), ErrNilArgument)
	assert.ErrorIs(t, recoverErr(func() { MapOption[int, int](o, nil) }), ErrNilArgument)
	assert.ErrorIs(t, recoverErr(func() { FlatMapOption[int, int](o, nil) }), ErrNilArgument)
}

func TestOption_AbsenceIsNotFailure(t *testing.T) {
	_, err := Empty[int]().Get()

	assert.True(t, errors.Is(err, ErrNoSuchElement))
	assert.False(t, errors.Is(err, ErrNilValue))
}
