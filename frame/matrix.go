package frame

import "slices"

// Matrix is a dense row-major float32 feature matrix.
// Data has length Rows*Dim; row i occupies Data[i*Dim : (i+1)*Dim].
type Matrix struct {
	Data []float32
	Rows int
	Dim  int
}

// NewMatrix allocates a zero matrix of the given shape.
func NewMatrix(rows, dim int) *Matrix {
	return &Matrix{
		Data: make([]float32, rows*dim),
		Rows: rows,
		Dim:  dim,
	}
}

// MatrixFromRows builds a Matrix from a slice of equally sized rows.
func MatrixFromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	dim := len(rows[0])
	m := NewMatrix(len(rows), dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, &ErrLengthMismatch{Column: "row", Expected: dim, Actual: len(row)}
		}
		copy(m.Data[i*dim:(i+1)*dim], row)
	}
	return m, nil
}

// Row returns row i as a slice aliasing the backing array.
func (m *Matrix) Row(i int) []float32 {
	return m.Data[i*m.Dim : (i+1)*m.Dim]
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 {
	return m.Data[i*m.Dim+j]
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		Data: slices.Clone(m.Data),
		Rows: m.Rows,
		Dim:  m.Dim,
	}
}
