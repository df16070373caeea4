package result

import (
	"fmt"

	"github.com/distribution-auth/fn/internal/contract"
)

var (
	// ErrInvalidArgument is the panic reason when a nil value or error is used to construct a Result.
	ErrInvalidArgument = contract.ErrInvalidArgument

	// ErrInvalidState is the panic reason when the wrong payload of a Result is accessed.
	ErrInvalidState = contract.ErrInvalidState
)

// UnwrapError is the panic value of Unwrap on a failed Result.
//
// It matches ErrInvalidState and, if the original error is a Go error, the original error as well.
type UnwrapError struct {
	// Cause is the error of the failed Result.
	Cause any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("%s: unwrapping failed result: %v", ErrInvalidState, e.Cause)
}

func (e *UnwrapError) Unwrap() []error {
	errs := []error{ErrInvalidState}

	if err, ok := e.Cause.(error); ok {
		errs = append(errs, err)
	}

	return errs
}
