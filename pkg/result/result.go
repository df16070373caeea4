// Package result provides Result, the outcome of a computation that either succeeded with a value (Ok)
// or failed with an error (Fail).
//
// Failures are data: they travel through Map and Bind chains without panicking.
// Panics are reserved for misuse of the API, like constructing a Result from nil
// or unwrapping the value of a failure.
package result

import (
	"fmt"
	"iter"

	"github.com/distribution-auth/fn/internal/contract"
	"github.com/distribution-auth/fn/pkg/option"
)

// Result is either a T value or an E error.
//
// The zero value is not a valid Result: use Ok or Fail to construct one.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Of is a Result whose error is a Go error.
// It reads as result.Of[T] at call sites.
type Of[T any] = Result[T, error]

// Unit is the value of a successful computation that produces nothing.
type Unit struct{}

// Ok returns a successful Result containing v.
// It panics with ErrInvalidArgument if v is nil.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: contract.NotNil(v, "result value"),
		ok:    true,
	}
}

// Fail returns a failed Result containing err.
// It panics with ErrInvalidArgument if err is nil.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: contract.NotNil(err, "result error"),
	}
}

// Success returns a successful Result with a Go error type.
func Success[T any](v T) Of[T] {
	return Ok[T, error](v)
}

// FromError converts an error into a failed Result.
func FromError[T any](err error) Of[T] {
	return Fail[T](err)
}

// FromTuple converts a (value, error) pair into a Result.
// It panics with ErrInvalidArgument if both v and err are nil.
func FromTuple[T any](v T, err error) Of[T] {
	if err != nil {
		return FromError[T](err)
	}

	return Success(v)
}

// Try calls f and converts its return values into a Result.
func Try[T any](f func() (T, error)) Of[T] {
	return FromTuple(f())
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsFail returns true if the Result is a failure.
func (r Result[T, E]) IsFail() bool {
	return !r.ok
}

// Err returns the error of a failed Result.
// It panics with ErrInvalidState if the Result is successful.
func (r Result[T, E]) Err() E {
	if r.ok {
		contract.Panicf(ErrInvalidState, "result is Ok")
	}

	return r.err
}

// Unwrap returns the value of a successful Result.
// It panics with an *UnwrapError carrying the original error if the Result is a failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Cause: r.err})
	}

	return r.value
}

// ToOption returns the value as an Option, discarding the error.
func (r Result[T, E]) ToOption() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}

	return option.Some(r.value)
}

// All returns a sequence yielding the value of a successful Result.
// The sequence can be iterated any number of times.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Inspect calls f with the value of a successful Result and returns the Result unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}

	return r
}

// InspectError calls f with the error of a failed Result and returns the Result unchanged.
func (r Result[T, E]) InspectError(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}

	return r
}

func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Fail(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}
