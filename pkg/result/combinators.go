package result

import (
	"github.com/distribution-auth/fn/pkg/option"
)

// Match calls onOk with the value of a successful Result or onFail with the error of a failed one.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onFail func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}

	return onFail(r.err)
}

// Map transforms the value of a successful Result.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}

	return Ok[U, E](f(r.value))
}

// MapError transforms the error of a failed Result.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Result[T, F]{value: r.value, ok: true}
	}

	return Fail[T](f(r.err))
}

// BiMap transforms either the value or the error, depending on which one the Result holds.
func BiMap[T, U, E, F any](r Result[T, E], onOk func(T) U, onFail func(E) F) Result[U, F] {
	if r.ok {
		return Ok[U, F](onOk(r.value))
	}

	return Fail[U](onFail(r.err))
}

// Bind chains a fallible computation on the value of a successful Result.
// A failed Result is returned as is, f is not called.
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}

	return f(r.value)
}

// Condition returns a successful Result if predicate holds, otherwise it fails with err.
func Condition[E any](predicate bool, err E) Result[Unit, E] {
	if !predicate {
		return Fail[Unit](err)
	}

	return Ok[Unit, E](Unit{})
}

// Tee calls action and returns a successful Result.
func Tee[E any](action func()) Result[Unit, E] {
	action()

	return Ok[Unit, E](Unit{})
}

// FromOption converts an Option into a Result, failing with err if the Option is empty.
func FromOption[T, E any](o option.Option[T], err E) Result[T, E] {
	v, ok := o.Get()
	if !ok {
		return Fail[T](err)
	}

	return Result[T, E]{value: v, ok: true}
}

// Equal reports whether a and b are both successful with equal values or both failed with equal errors.
// Like ==, it panics if T or E is an interface type and the values have the same uncomparable dynamic type.
func Equal[T, E comparable](a Result[T, E], b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}

	if a.ok {
		return a.value == b.value
	}

	return a.err == b.err
}
