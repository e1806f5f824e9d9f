package internal

import "github.com/pkg/errors"

// Threading errors through the descent, the walk and the splitting code would
// add a lot of noise for conditions that all mean "the caller handed us arcs
// that don't form a planar subdivision". Those conditions panic with a
// DecompositionError, which the public API recovers and returns. All of them
// are detected before the decomposition is mutated.
//
// Anything else that panics is a bug, and is left to crash.

type DecompositionError struct {
	cause error
}

func (e *DecompositionError) Error() string {
	return e.cause.Error()
}

func (e *DecompositionError) Unwrap() error {
	return e.cause
}

// Panic with a DecompositionError.
func fatalf(format string, args ...any) {
	panic(&DecompositionError{errors.Errorf(format, args...)})
}

// Turn a recovered DecompositionError back into an error. Any other panic
// value is re-raised.
func HandleDecompositionPanicRecover(r any) error {
	if r != nil {
		if decompositionError, ok := r.(*DecompositionError); ok {
			return decompositionError
		}
		panic(r)
	}
	return nil
}
