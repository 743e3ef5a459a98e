package clustergo

import (
	"errors"
	"fmt"

	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/kmeans"
)

var (
	// ErrEmptyInput is returned when the selected data has no rows.
	ErrEmptyInput = errors.New("empty input")
)

// ErrInvalidArgument indicates a fit or sweep argument outside its valid range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidArgument struct {
	Arg    string
	Reason string
	cause  error
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

func (e *ErrInvalidArgument) Unwrap() error { return e.cause }

// ErrBadFeature indicates a feature column that is absent or unusable.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBadFeature struct {
	Column string
	cause  error
}

func (e *ErrBadFeature) Error() string {
	return fmt.Sprintf("bad feature column %q", e.Column)
}

func (e *ErrBadFeature) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Empty-input unification.
	if errors.Is(err, kmeans.ErrEmptyInput) {
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}

	// Argument normalization.
	var ia *kmeans.ErrInvalidArgument
	if errors.As(err, &ia) {
		return &ErrInvalidArgument{Arg: ia.Arg, Reason: ia.Reason, cause: err}
	}

	// Feature-column normalization.
	var nf *frame.ErrColumnNotFound
	if errors.As(err, &nf) {
		return &ErrBadFeature{Column: nf.Name, cause: err}
	}
	var nn *frame.ErrNotNumeric
	if errors.As(err, &nn) {
		return &ErrBadFeature{Column: nn.Column, cause: err}
	}
	var mv *frame.ErrMissingValues
	if errors.As(err, &mv) {
		return &ErrBadFeature{Column: mv.Column, cause: err}
	}

	return err
}
