// Package slices provides generic slice helpers that return Options instead of sentinel indexes.
package slices

import (
	"github.com/samber/lo"
	expslices "golang.org/x/exp/slices"

	"github.com/distribution-auth/fn/pkg/option"
)

// Map transforms every element of s with f.
func Map[T, U any](s []T, f func(T) U) []U {
	return lo.Map(s, func(v T, _ int) U {
		return f(v)
	})
}

// FirstOrNone returns the first element of s, or None if s is empty or the first element is nil.
func FirstOrNone[T any](s []T) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}

	return option.Optional(s[0])
}

// FindOrNone returns the first element of s matching predicate.
func FindOrNone[T any](s []T, predicate func(T) bool) option.Option[T] {
	i := expslices.IndexFunc(s, predicate)
	if i < 0 {
		return option.None[T]()
	}

	return option.Optional(s[i])
}

// Choose applies f to every element of s and keeps the present values.
func Choose[T, U any](s []T, f func(T) option.Option[U]) []U {
	return lo.FilterMap(s, func(v T, _ int) (U, bool) {
		return f(v).Get()
	})
}
