package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input matrix has no rows.
	ErrEmptyInput = errors.New("input matrix has no rows")
)

// ErrInvalidArgument indicates a fit argument outside its valid range.
// It is returned before any iteration begins.
type ErrInvalidArgument struct {
	Arg    string
	Reason string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// ErrDimensionMismatch indicates a vector whose length disagrees with the
// model dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
