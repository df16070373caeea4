// Package contract detects nil sentinels and reports API misuse.
//
// Misuse is a programming error: it is reported with a panic carrying an error value,
// so a recovering caller can still match it with errors.Is.
package contract

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is raised when a nil value is passed where a value is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is raised when a payload is accessed on the wrong variant.
	ErrInvalidState = errors.New("invalid state")
)

// IsNil reports whether v is the nil sentinel of its type.
//
// Nil pointers, interfaces, maps, channels, funcs and unsafe pointers are nil sentinels.
// A nil slice is a valid empty slice and is not reported.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Panicf panics with an error wrapping kind.
func Panicf(kind error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
}

// NotNil returns v or panics with ErrInvalidArgument if v is nil.
func NotNil[T any](v T, what string) T {
	if IsNil(v) {
		Panicf(ErrInvalidArgument, "%s must not be nil", what)
	}

	return v
}
