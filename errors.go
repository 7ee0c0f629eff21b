package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by New for out-of-range constructor
	// parameters (k < 1, max iterations < 1, negative tolerance).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFitted is returned when prediction or fit-state reads are
	// attempted before a successful Fit.
	ErrNotFitted = errors.New("model not fitted")

	// ErrDegenerateInput indicates that k-means++ seeding produced a
	// non-finite probability mass (NaN or Inf in the input points).
	ErrDegenerateInput = errors.New("degenerate input")
)

// ErrDimensionMismatch indicates inconsistent dimensionality or length
// between arguments.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidInitMethod indicates an unrecognized initialization strategy.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidInitMethod struct {
	Method string
	cause  error
}

func (e *ErrInvalidInitMethod) Error() string {
	return fmt.Sprintf("invalid init method: %q", e.Method)
}

func (e *ErrInvalidInitMethod) Unwrap() error { return e.cause }
