package preprocess

import (
	"errors"
	"fmt"

	"github.com/clustergo/clustergo/frame"
)

// ErrNotFitted is returned by Transform when Fit has not been called.
var ErrNotFitted = errors.New("transformer is not fitted")

// Transformer is the common contract of preprocessing steps.
type Transformer interface {
	// Fit learns the parameters of the transformation from f.
	Fit(f *frame.Frame) error

	// Transform applies the learned transformation, returning a new Frame.
	// The input is never mutated.
	Transform(f *frame.Frame) (*frame.Frame, error)
}

// FitTransform fits t on f and immediately transforms f.
func FitTransform(t Transformer, f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}
	return t.Transform(f)
}

// ErrUnknownCategory indicates a category at transform time that was not
// seen during Fit.
type ErrUnknownCategory struct {
	Column string
	Value  string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown category %q in column %q", e.Value, e.Column)
}

// numericColumns returns the requested columns, or every numeric column of
// f when names is empty.
func numericColumns(f *frame.Frame, names []string) ([]*frame.Column, error) {
	if len(names) == 0 {
		var cols []*frame.Column
		for _, name := range f.Names() {
			c, err := f.Column(name)
			if err != nil {
				return nil, err
			}
			if c.Type == frame.Numeric {
				cols = append(cols, c)
			}
		}
		return cols, nil
	}

	cols := make([]*frame.Column, len(names))
	for i, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Type != frame.Numeric {
			return nil, &frame.ErrNotNumeric{Column: name}
		}
		cols[i] = c
	}
	return cols, nil
}

// categoricalColumns returns the requested columns, or every categorical
// column of f when names is empty.
func categoricalColumns(f *frame.Frame, names []string) ([]*frame.Column, error) {
	if len(names) == 0 {
		var cols []*frame.Column
		for _, name := range f.Names() {
			c, err := f.Column(name)
			if err != nil {
				return nil, err
			}
			if c.Type == frame.Categorical {
				cols = append(cols, c)
			}
		}
		return cols, nil
	}

	cols := make([]*frame.Column, len(names))
	for i, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Type != frame.Categorical {
			return nil, fmt.Errorf("column %q is not categorical", name)
		}
		cols[i] = c
	}
	return cols, nil
}
