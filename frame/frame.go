package frame

import (
	"fmt"
	"math"
	"slices"
)

// ColumnType discriminates the two supported column representations.
type ColumnType int

const (
	// Numeric columns hold float64 values; math.NaN marks a missing cell.
	Numeric ColumnType = iota
	// Categorical columns hold string labels; "" marks a missing cell.
	Categorical
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Column is a single named column of a Frame.
// Exactly one of Floats/Strings is populated, depending on Type.
type Column struct {
	Name    string
	Type    ColumnType
	Floats  []float64
	Strings []string
}

// NewNumericColumn creates a numeric column. The slice is not copied.
func NewNumericColumn(name string, values []float64) *Column {
	return &Column{Name: name, Type: Numeric, Floats: values}
}

// NewCategoricalColumn creates a categorical column. The slice is not copied.
func NewCategoricalColumn(name string, values []string) *Column {
	return &Column{Name: name, Type: Categorical, Strings: values}
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	if c.Type == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// IsMissing reports whether cell i holds a missing value.
func (c *Column) IsMissing(i int) bool {
	if c.Type == Numeric {
		return math.IsNaN(c.Floats[i])
	}
	return c.Strings[i] == ""
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	return &Column{
		Name:    c.Name,
		Type:    c.Type,
		Floats:  slices.Clone(c.Floats),
		Strings: slices.Clone(c.Strings),
	}
}

// Frame is an ordered collection of equally sized named columns.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// New creates a Frame from the given columns.
// All columns must have the same length and unique names.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := f.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Rows returns the number of rows; 0 for an empty frame.
func (f *Frame) Rows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, or an error if it does not exist.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, &ErrColumnNotFound{Name: name}
	}
	return f.cols[i], nil
}

// AddColumn appends a column to the frame.
func (f *Frame) AddColumn(c *Column) error {
	if _, ok := f.index[c.Name]; ok {
		return fmt.Errorf("duplicate column %q", c.Name)
	}
	if len(f.cols) > 0 && c.Len() != f.Rows() {
		return &ErrLengthMismatch{Column: c.Name, Expected: f.Rows(), Actual: c.Len()}
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// ReplaceColumn swaps the named column for a new one of the same length,
// keeping its position.
func (f *Frame) ReplaceColumn(name string, c *Column) error {
	i, ok := f.index[name]
	if !ok {
		return &ErrColumnNotFound{Name: name}
	}
	if c.Len() != f.Rows() {
		return &ErrLengthMismatch{Column: c.Name, Expected: f.Rows(), Actual: c.Len()}
	}
	if c.Name != name {
		if _, exists := f.index[c.Name]; exists {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		delete(f.index, name)
		f.index[c.Name] = i
	}
	f.cols[i] = c
	return nil
}

// DropColumn removes the named column.
func (f *Frame) DropColumn(name string) error {
	i, ok := f.index[name]
	if !ok {
		return &ErrColumnNotFound{Name: name}
	}
	f.cols = append(f.cols[:i], f.cols[i+1:]...)
	delete(f.index, name)
	for j := i; j < len(f.cols); j++ {
		f.index[f.cols[j].Name] = j
	}
	return nil
}

// Select returns a new Frame holding deep copies of the named columns,
// in the requested order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{index: make(map[string]int, len(names))}
	for _, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(c.Clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{index: make(map[string]int, len(f.cols))}
	for _, c := range f.cols {
		_ = out.AddColumn(c.Clone())
	}
	return out
}

// Matrix lowers the named columns (all columns if none given) to a flat
// row-major feature matrix. Every selected column must be numeric and
// free of missing values; impute and encode first.
func (f *Frame) Matrix(names ...string) (*Matrix, error) {
	if len(names) == 0 {
		names = f.Names()
	}
	cols := make([]*Column, len(names))
	for j, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Type != Numeric {
			return nil, &ErrNotNumeric{Column: name}
		}
		if c.MissingCount() > 0 {
			return nil, &ErrMissingValues{Column: name, Count: c.MissingCount()}
		}
		cols[j] = c
	}

	rows, dim := f.Rows(), len(cols)
	m := NewMatrix(rows, dim)
	for j, c := range cols {
		for i, v := range c.Floats {
			m.Data[i*dim+j] = float32(v)
		}
	}
	return m, nil
}
