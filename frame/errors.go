package frame

import "fmt"

// ErrColumnNotFound indicates a reference to a column the frame does not have.
type ErrColumnNotFound struct {
	Name string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column not found: %q", e.Name)
}

// ErrLengthMismatch indicates a column or row whose length disagrees with the frame.
type ErrLengthMismatch struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch in %q: expected %d, got %d", e.Column, e.Expected, e.Actual)
}

// ErrNotNumeric indicates a categorical column where a numeric one is required.
type ErrNotNumeric struct {
	Column string
}

func (e *ErrNotNumeric) Error() string {
	return fmt.Sprintf("column %q is not numeric; encode it first", e.Column)
}

// ErrMissingValues indicates missing cells in a column that must be complete.
type ErrMissingValues struct {
	Column string
	Count  int
}

func (e *ErrMissingValues) Error() string {
	return fmt.Sprintf("column %q has %d missing values; impute them first", e.Column, e.Count)
}
