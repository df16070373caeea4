package result

import (
	"go.uber.org/multierr"
)

// Traverse applies f to every value in order and collects the results.
//
// It stops at the first failure and returns it: f is not called for the remaining values.
func Traverse[A, B, E any](values []A, f func(A) Result[B, E]) Result[[]B, E] {
	mapped := make([]B, 0, len(values))

	for _, v := range values {
		r := f(v)
		if !r.ok {
			return Result[[]B, E]{err: r.err}
		}

		mapped = append(mapped, r.value)
	}

	return Result[[]B, E]{value: mapped, ok: true}
}

// Sequence turns a list of Results into a Result of a list.
// It returns the first failure, if any.
func Sequence[T, E any](results []Result[T, E]) Result[[]T, E] {
	return Traverse(results, func(r Result[T, E]) Result[T, E] { return r })
}

// TraverseAll is like Traverse, but it calls f for every value
// and fails with all errors combined.
func TraverseAll[A, B any](values []A, f func(A) Of[B]) Of[[]B] {
	mapped := make([]B, 0, len(values))

	var err error

	for _, v := range values {
		r := f(v)
		if !r.ok {
			err = multierr.Append(err, r.err)

			continue
		}

		mapped = append(mapped, r.value)
	}

	if err != nil {
		return FromError[[]B](err)
	}

	return Success(mapped)
}
