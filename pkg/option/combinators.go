package option

import (
	"github.com/distribution-auth/fn/internal/contract"
)

// Match calls onSome with the value or onNone if the Option is empty.
// It panics with ErrInvalidArgument if the called branch returns nil.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return contract.NotNil(onSome(o.value), "match result")
	}

	return contract.NotNil(onNone(), "match result")
}

// Map transforms the value if present.
// It panics with ErrInvalidArgument if f returns nil; use MapOptional for that case.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Some(f(o.value))
}

// MapOptional transforms the value if present and returns None if f returns nil.
func MapOptional[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Optional(f(o.value))
}

// Bind chains an optional computation on the value if present.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}

	return f(o.value)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}

	return o.value
}

// TryCast narrows the value to U.
// It returns None if the Option is empty or the dynamic type of the value is not U.
func TryCast[U, T any](o Option[T]) Option[U] {
	if !o.some {
		return None[U]()
	}

	v, ok := any(o.value).(U)

	return FromOk(v, ok)
}

// Fold combines state with the value if present, otherwise it returns state unchanged.
func Fold[T, S any](o Option[T], state S, f func(S, T) S) S {
	if !o.some {
		return state
	}

	return f(state, o.value)
}

// Zip combines the values of a and b if both are present.
// It panics with ErrInvalidArgument if f returns nil.
func Zip[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	if !a.some || !b.some {
		return None[C]()
	}

	return Some(f(a.value, b.value))
}

// Equal reports whether a and b are both empty or both contain equal values.
// Like ==, it panics if T is an interface type and the values have the same uncomparable dynamic type.
func Equal[T comparable](a Option[T], b Option[T]) bool {
	if a.some != b.some {
		return false
	}

	return !a.some || a.value == b.value
}

// Contains reports whether o contains a value equal to v.
// Like ==, it panics if T is an interface type and the values have the same uncomparable dynamic type.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}
