// Package maps provides generic map helpers that return Options instead of comma-ok pairs.
package maps

import (
	"github.com/distribution-auth/fn/pkg/option"
)

// Lookup returns the value stored under key, or None if there is no such key or the value is nil.
func Lookup[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]

	return option.FromOk(v, ok)
}
