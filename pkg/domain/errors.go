package domain

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when an iteration would divide by zero:
// f(a) == f(b) in False Position, or a zero diagonal entry in Jacobi.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidInput is returned for parameters a solver cannot run with
// (negative tolerance, negative iteration cap, malformed system).
var ErrInvalidInput = errors.New("invalid input")

// ErrDimensionMismatch is returned when a matrix is not square or the
// right-hand side length does not match it.
// It also matches ErrInvalidInput through errors.Is.
var ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)

// ErrNonFinite is returned when the equation evaluates to NaN or ±Inf.
var ErrNonFinite = errors.New("non-finite value")

// ErrSingular is returned when a direct factorization meets a singular matrix.
var ErrSingular = errors.New("singular matrix")

// ErrUnknownEquation is returned when an equation name is not registered.
var ErrUnknownEquation = errors.New("unknown equation")

// ErrResultNotFound is returned when a key cannot be found in the result store.
var ErrResultNotFound = errors.New("result not found")

// SolveError decorates a solver failure with the method and the iteration
// at which it happened. Iteration is 0 for failures raised before the loop.
type SolveError struct {
	Method    Method
	Iteration int
	Err       error
}

func (e *SolveError) Error() string {
	if e.Iteration == 0 {
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("%s: iteration %d: %v", e.Method, e.Iteration, e.Err)
}

func (e *SolveError) Unwrap() error {
	return e.Err
}
