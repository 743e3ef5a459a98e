package preprocess

import (
	"gonum.org/v1/gonum/stat"

	"github.com/clustergo/clustergo/frame"
)

// StandardScaler standardizes numeric columns to zero mean and unit
// variance. Zero-variance columns are centered only. If Columns is empty,
// every numeric column of the fitted Frame is targeted.
type StandardScaler struct {
	Columns []string

	mean map[string]float64
	std  map[string]float64
}

// NewStandardScaler creates a StandardScaler for the given columns
// (all numeric columns when empty).
func NewStandardScaler(columns ...string) *StandardScaler {
	return &StandardScaler{Columns: columns}
}

// Fit learns per-column mean and standard deviation, skipping missing cells.
func (s *StandardScaler) Fit(f *frame.Frame) error {
	cols, err := numericColumns(f, s.Columns)
	if err != nil {
		return err
	}

	s.mean = make(map[string]float64, len(cols))
	s.std = make(map[string]float64, len(cols))
	for _, c := range cols {
		present := presentValues(c)
		if len(present) == 0 {
			s.mean[c.Name], s.std[c.Name] = 0, 0
			continue
		}
		mean, std := stat.MeanStdDev(present, nil)
		if len(present) < 2 {
			std = 0
		}
		s.mean[c.Name] = mean
		s.std[c.Name] = std
	}

	return nil
}

// Transform returns a copy of f with targeted columns standardized.
// Missing cells pass through untouched.
func (s *StandardScaler) Transform(f *frame.Frame) (*frame.Frame, error) {
	if s.mean == nil {
		return nil, ErrNotFitted
	}

	out := f.Clone()
	for name, mean := range s.mean {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		std := s.std[name]
		for i := range c.Floats {
			if c.IsMissing(i) {
				continue
			}
			c.Floats[i] -= mean
			if std > 0 {
				c.Floats[i] /= std
			}
		}
	}

	return out, nil
}

// MinMaxScaler rescales numeric columns to [0, 1]. Constant columns map
// to 0. If Columns is empty, every numeric column of the fitted Frame is
// targeted.
type MinMaxScaler struct {
	Columns []string

	min map[string]float64
	max map[string]float64
}

// NewMinMaxScaler creates a MinMaxScaler for the given columns
// (all numeric columns when empty).
func NewMinMaxScaler(columns ...string) *MinMaxScaler {
	return &MinMaxScaler{Columns: columns}
}

// Fit learns per-column minimum and maximum, skipping missing cells.
func (s *MinMaxScaler) Fit(f *frame.Frame) error {
	cols, err := numericColumns(f, s.Columns)
	if err != nil {
		return err
	}

	s.min = make(map[string]float64, len(cols))
	s.max = make(map[string]float64, len(cols))
	for _, c := range cols {
		present := presentValues(c)
		if len(present) == 0 {
			s.min[c.Name], s.max[c.Name] = 0, 0
			continue
		}
		lo, hi := present[0], present[0]
		for _, v := range present[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		s.min[c.Name], s.max[c.Name] = lo, hi
	}

	return nil
}

// Transform returns a copy of f with targeted columns rescaled to [0, 1].
// Missing cells pass through untouched.
func (s *MinMaxScaler) Transform(f *frame.Frame) (*frame.Frame, error) {
	if s.min == nil {
		return nil, ErrNotFitted
	}

	out := f.Clone()
	for name, lo := range s.min {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		span := s.max[name] - lo
		for i := range c.Floats {
			if c.IsMissing(i) {
				continue
			}
			if span == 0 {
				c.Floats[i] = 0
				continue
			}
			c.Floats[i] = (c.Floats[i] - lo) / span
		}
	}

	return out, nil
}

func presentValues(c *frame.Column) []float64 {
	present := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.IsMissing(i) {
			present = append(present, v)
		}
	}
	return present
}
