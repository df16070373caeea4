package option

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		onSome := func(v int) string { return fmt.Sprintf("value: %d", v) }
		onNone := func() string { return "no value" }

		assert.Equal(t, "value: 5", Match(Some(5), onSome, onNone))
		assert.Equal(t, "no value", Match(None[int](), onSome, onNone))
	})

	t.Run("Error", func(t *testing.T) {
		requirePanicsWith(t, ErrInvalidArgument, func() {
			Match(Some(5), func(int) *int { return nil }, func() *int { return new(int) })
		})

		requirePanicsWith(t, ErrInvalidArgument, func() {
			Match(None[int](), func(int) error { return errors.New("error") }, func() error { return nil })
		})
	})
}

func TestMap(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		identity := func(v int) int { return v }

		assert.Equal(t, Some(5), Map(Some(5), identity))
		assert.Equal(t, None[int](), Map(None[int](), identity))
	})

	t.Run("OK", func(t *testing.T) {
		assert.Equal(t, Some("5"), Map(Some(5), strconv.Itoa))
	})

	t.Run("Error", func(t *testing.T) {
		requirePanicsWith(t, ErrInvalidArgument, func() {
			Map(Some(5), func(int) *int { return nil })
		})
	})
}

func TestMapOptional(t *testing.T) {
	users := map[string]*string{}
	name := "John"
	users["john"] = &name

	find := func(id string) *string { return users[id] }

	assert.Equal(t, Some(&name), MapOptional(Some("john"), find))
	assert.Equal(t, None[*string](), MapOptional(Some("jane"), find))
	assert.Equal(t, None[*string](), MapOptional(None[string](), find))
}

func TestBind(t *testing.T) {
	parse := func(s string) Option[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}

		return Some(v)
	}

	t.Run("RightIdentity", func(t *testing.T) {
		assert.Equal(t, Some(5), Bind(Some(5), Some[int]))
		assert.Equal(t, None[int](), Bind(None[int](), Some[int]))
	})

	t.Run("OK", func(t *testing.T) {
		assert.Equal(t, Some(42), Bind(Some("42"), parse))
		assert.Equal(t, None[int](), Bind(Some("forty-two"), parse))
	})

	t.Run("None", func(t *testing.T) {
		called := false

		result := Bind(None[string](), func(s string) Option[int] {
			called = true

			return parse(s)
		})

		assert.Equal(t, None[int](), result)
		assert.False(t, called)
	})
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, Some(5), Flatten(Some(Some(5))))
	assert.Equal(t, None[int](), Flatten(Some(None[int]())))
	assert.Equal(t, None[int](), Flatten(None[Option[int]]()))
}

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return e.name + " not found"
}

func TestTryCast(t *testing.T) {
	t.Run("Any", func(t *testing.T) {
		o := Some[any](5)

		assert.Equal(t, Some(5), TryCast[int](o))
		assert.Equal(t, None[string](), TryCast[string](o))
		assert.Equal(t, None[int](), TryCast[int](None[any]()))
	})

	t.Run("Error", func(t *testing.T) {
		err := &notFoundError{name: "user"}
		o := Some[error](err)

		assert.Equal(t, Some(err), TryCast[*notFoundError](o))
		assert.Equal(t, None[fmt.Stringer](), TryCast[fmt.Stringer](o))
	})
}

func TestFold(t *testing.T) {
	sum := func(acc int, v int) int { return acc + v }

	assert.Equal(t, 15, Fold(Some(5), 10, sum))
	assert.Equal(t, 10, Fold(None[int](), 10, sum))
}

func TestZip(t *testing.T) {
	add := func(a int, b string) string { return strconv.Itoa(a) + b }

	testCases := []struct {
		a        Option[int]
		b        Option[string]
		expected Option[string]
	}{
		{Some(1), Some("a"), Some("1a")},
		{Some(1), None[string](), None[string]()},
		{None[int](), Some("a"), None[string]()},
		{None[int](), None[string](), None[string]()},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			assert.Equal(t, testCase.expected, Zip(testCase.a, testCase.b, add))
		})
	}

	t.Run("Error", func(t *testing.T) {
		requirePanicsWith(t, ErrInvalidArgument, func() {
			Zip(Some(1), Some(2), func(int, int) *int { return nil })
		})
	})
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		a        Option[int]
		b        Option[int]
		expected bool
	}{
		{Some(5), Some(5), true},
		{Some(5), Some(6), false},
		{Some(5), None[int](), false},
		{None[int](), Some(5), false},
		{None[int](), None[int](), true},
		{Some(0), None[int](), false},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(fmt.Sprintf("%s==%s", testCase.a, testCase.b), func(t *testing.T) {
			assert.Equal(t, testCase.expected, Equal(testCase.a, testCase.b))
		})
	}

	t.Run("UncomparableDynamicType", func(t *testing.T) {
		assert.True(t, Equal(None[any](), None[any]()))
		assert.False(t, Equal(Some[any]([]int{1}), Some[any](1)))

		assert.Panics(t, func() {
			Equal(Some[any]([]int{1}), Some[any]([]int{1}))
		})
	})
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Some(5), 5))
	assert.False(t, Contains(Some(5), 6))
	assert.False(t, Contains(None[int](), 0))
	assert.False(t, Contains(None[any](), any([]int{1})))

	assert.Panics(t, func() {
		Contains(Some[any]([]int{1}), any([]int{1}))
	})
}
