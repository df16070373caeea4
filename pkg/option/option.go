// Package option provides Option, a value that is either present (Some) or absent (None).
//
// An Option never holds a nil value: Some panics when it receives one.
// Use Optional to turn a possibly nil value into an Option instead.
//
// An Option converts into a result.Result with result.FromOption.
package option

import (
	"fmt"
	"iter"

	"github.com/distribution-auth/fn/internal/contract"
)

var (
	// ErrInvalidArgument is the panic reason when a nil value is used where a value is required.
	ErrInvalidArgument = contract.ErrInvalidArgument

	// ErrInvalidState is the panic reason when the value of a None is forced out.
	ErrInvalidState = contract.ErrInvalidState
)

// Option represents an optional value.
// It either contains a value or it does not.
//
// The zero value is None. Options are immutable and safe to share.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option containing v.
// It panics with ErrInvalidArgument if v is nil.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: contract.NotNil(v, "option value"),
		some:  true,
	}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Optional returns Some(v), or None if v is nil.
func Optional[T any](v T) Option[T] {
	if contract.IsNil(v) {
		return None[T]()
	}

	return Option[T]{value: v, some: true}
}

// FromOk turns the result of a comma-ok expression into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Optional(v)
}

// FromPtr returns the value p points to, or None if p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Optional(*p)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value (or its default) stored in the Option
// and a boolean flag that shows whether the value exists or not.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the value stored in the Option.
// It panics with ErrInvalidState if the Option is empty.
func (o Option[T]) MustGet() T {
	if !o.some {
		contract.Panicf(ErrInvalidState, "option is None")
	}

	return o.value
}

// IfNone returns the value stored in the Option or fallback if the Option is empty.
// It panics with ErrInvalidArgument if fallback is needed and it is nil.
func (o Option[T]) IfNone(fallback T) T {
	if o.some {
		return o.value
	}

	return contract.NotNil(fallback, "fallback value")
}

// IfNoneFunc is like IfNone, but the fallback is only computed when the Option is empty.
func (o Option[T]) IfNoneFunc(fallback func() T) T {
	if o.some {
		return o.value
	}

	return contract.NotNil(fallback(), "fallback value")
}

// IfNoneUnsafe is like IfNone, but it accepts a nil fallback.
func (o Option[T]) IfNoneUnsafe(fallback T) T {
	if o.some {
		return o.value
	}

	return fallback
}

// OrElse returns the Option if it contains a value, otherwise it returns other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.some {
		return o
	}

	return other
}

// OrElseFunc is like OrElse, but the alternative is only computed when the Option is empty.
func (o Option[T]) OrElseFunc(other func() Option[T]) Option[T] {
	if o.some {
		return o
	}

	return other()
}

// Filter returns the Option if it contains a value matching predicate, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}

	return None[T]()
}

// ToPtr returns a pointer to a copy of the value or nil if the Option is empty.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}

	v := o.value

	return &v
}

// All returns a sequence yielding the value, if any.
// The sequence can be iterated any number of times.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// ToSlice returns a slice with zero or one element.
func (o Option[T]) ToSlice() []T {
	if !o.some {
		return []T{}
	}

	return []T{o.value}
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
