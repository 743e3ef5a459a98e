package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f, err := New(
		NewNumericColumn("age", []float64{34, 51}),
		NewCategoricalColumn("gender", []string{"Male", "Female"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"age", "gender"}, f.Names())
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New(
		NewNumericColumn("a", []float64{1, 2}),
		NewNumericColumn("b", []float64{1}),
	)
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, "b", lm.Column)
}

func TestNew_DuplicateColumn(t *testing.T) {
	_, err := New(
		NewNumericColumn("a", []float64{1}),
		NewNumericColumn("a", []float64{2}),
	)
	assert.Error(t, err)
}

func TestColumn_Missing(t *testing.T) {
	c := NewNumericColumn("income", []float64{15, math.NaN(), 42})
	assert.False(t, c.IsMissing(0))
	assert.True(t, c.IsMissing(1))
	assert.Equal(t, 1, c.MissingCount())

	s := NewCategoricalColumn("gender", []string{"Male", ""})
	assert.True(t, s.IsMissing(1))
	assert.Equal(t, 1, s.MissingCount())
}

func TestSelect(t *testing.T) {
	f, err := New(
		NewNumericColumn("a", []float64{1, 2}),
		NewNumericColumn("b", []float64{3, 4}),
		NewNumericColumn("c", []float64{5, 6}),
	)
	require.NoError(t, err)

	sub, err := f.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Names())

	// Deep copy: mutating the selection must not touch the source.
	col, err := sub.Column("a")
	require.NoError(t, err)
	col.Floats[0] = 99
	orig, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig.Floats[0])

	_, err = f.Select("nope")
	var nf *ErrColumnNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestDropColumn(t *testing.T) {
	f, err := New(
		NewNumericColumn("a", []float64{1}),
		NewNumericColumn("b", []float64{2}),
		NewNumericColumn("c", []float64{3}),
	)
	require.NoError(t, err)

	require.NoError(t, f.DropColumn("b"))
	assert.Equal(t, []string{"a", "c"}, f.Names())

	// Index stays consistent after the shift.
	c, err := f.Column("c")
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Floats[0])

	assert.Error(t, f.DropColumn("b"))
}

func TestReplaceColumn(t *testing.T) {
	f, err := New(NewNumericColumn("a", []float64{1, 2}))
	require.NoError(t, err)

	require.NoError(t, f.ReplaceColumn("a", NewNumericColumn("a_scaled", []float64{0.1, 0.2})))
	assert.Equal(t, []string{"a_scaled"}, f.Names())

	err = f.ReplaceColumn("a_scaled", NewNumericColumn("x", []float64{1}))
	var lm *ErrLengthMismatch
	assert.ErrorAs(t, err, &lm)
}

func TestMatrix(t *testing.T) {
	f, err := New(
		NewNumericColumn("x", []float64{1, 3}),
		NewNumericColumn("y", []float64{2, 4}),
	)
	require.NoError(t, err)

	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 2, m.Dim)
	assert.Equal(t, []float32{1, 2, 3, 4}, m.Data)
	assert.Equal(t, []float32{3, 4}, m.Row(1))
	assert.Equal(t, float32(2), m.At(0, 1))
}

func TestMatrix_Errors(t *testing.T) {
	f, err := New(
		NewNumericColumn("x", []float64{1, math.NaN()}),
		NewCategoricalColumn("g", []string{"a", "b"}),
	)
	require.NoError(t, err)

	_, err = f.Matrix("g")
	var nn *ErrNotNumeric
	assert.ErrorAs(t, err, &nn)

	_, err = f.Matrix("x")
	var mv *ErrMissingValues
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, 1, mv.Count)
}

func TestMatrixFromRows(t *testing.T) {
	m, err := MatrixFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, m.Data)

	_, err = MatrixFromRows([][]float32{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestMatrixClone(t *testing.T) {
	m, err := MatrixFromRows([][]float32{{1, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	clone.Data[0] = 9
	assert.Equal(t, float32(1), m.Data[0])
}
