// Package pca projects feature matrices onto their principal components.
//
// It exists for the visualization side of the toolkit: cluster assignments
// are plotted against a 2-D projection of the standardized features. The
// decomposition is computed with gonum's SVD of the centered data matrix.
package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/clustergo/clustergo/frame"
)

var (
	// ErrEmptyInput is returned when the input matrix has no rows.
	ErrEmptyInput = errors.New("input matrix has no rows")
	// ErrTooFewRows is returned by Fit when there is nothing to decompose.
	ErrTooFewRows = errors.New("need at least two rows to fit a projection")
)

// ErrInvalidComponents indicates a component count outside [1, min(rows, dim)].
type ErrInvalidComponents struct {
	Components int
	Max        int
}

func (e *ErrInvalidComponents) Error() string {
	return fmt.Sprintf("invalid component count %d: must be in [1, %d]", e.Components, e.Max)
}

// ErrDimensionMismatch indicates a matrix whose width disagrees with the
// fitted projection.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Projection holds the fitted principal axes and centering statistics.
type Projection struct {
	Components    int
	Dim           int
	Mean          []float64 // column means of the fitted data
	Axes          []float64 // flat row-major, Components*Dim
	VarianceRatio []float64 // fraction of total variance per component
}

// Fit learns a projection onto the leading principal components of m.
//
// The sign of each axis is fixed so its largest-magnitude loading is
// non-negative, making the projection deterministic.
func Fit(m *frame.Matrix, components int) (*Projection, error) {
	if m == nil || m.Rows == 0 {
		return nil, ErrEmptyInput
	}
	if m.Rows < 2 {
		return nil, ErrTooFewRows
	}
	maxComponents := min(m.Rows, m.Dim)
	if components <= 0 || components > maxComponents {
		return nil, &ErrInvalidComponents{Components: components, Max: maxComponents}
	}

	mean := make([]float64, m.Dim)
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			mean[j] += float64(v)
		}
	}
	for j := range mean {
		mean[j] /= float64(m.Rows)
	}

	centered := mat.NewDense(m.Rows, m.Dim, nil)
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			centered.Set(i, j, float64(v)-mean[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, errors.New("SVD failed to converge")
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	var total float64
	for _, s := range values {
		total += s * s
	}

	p := &Projection{
		Components:    components,
		Dim:           m.Dim,
		Mean:          mean,
		Axes:          make([]float64, components*m.Dim),
		VarianceRatio: make([]float64, components),
	}
	for c := 0; c < components; c++ {
		axis := p.Axes[c*m.Dim : (c+1)*m.Dim]
		for j := 0; j < m.Dim; j++ {
			axis[j] = v.At(j, c)
		}
		fixSign(axis)
		if total > 0 {
			p.VarianceRatio[c] = values[c] * values[c] / total
		}
	}

	return p, nil
}

// Transform maps the rows of m into component space, returning a
// Rows x Components matrix.
func (p *Projection) Transform(m *frame.Matrix) (*frame.Matrix, error) {
	if m == nil || m.Rows == 0 {
		return nil, ErrEmptyInput
	}
	if m.Dim != p.Dim {
		return nil, &ErrDimensionMismatch{Expected: p.Dim, Actual: m.Dim}
	}

	out := frame.NewMatrix(m.Rows, p.Components)
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for c := 0; c < p.Components; c++ {
			axis := p.Axes[c*p.Dim : (c+1)*p.Dim]
			var dot float64
			for j, v := range row {
				dot += (float64(v) - p.Mean[j]) * axis[j]
			}
			out.Data[i*p.Components+c] = float32(dot)
		}
	}

	return out, nil
}

// FitTransform fits a projection on m and immediately applies it.
func FitTransform(m *frame.Matrix, components int) (*frame.Matrix, *Projection, error) {
	p, err := Fit(m, components)
	if err != nil {
		return nil, nil, err
	}
	out, err := p.Transform(m)
	if err != nil {
		return nil, nil, err
	}
	return out, p, nil
}

// fixSign flips axis so its largest-magnitude loading is non-negative.
func fixSign(axis []float64) {
	maxIdx := 0
	for j, v := range axis {
		if abs(v) > abs(axis[maxIdx]) {
			maxIdx = j
		}
	}
	if axis[maxIdx] < 0 {
		for j := range axis {
			axis[j] = -axis[j]
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
