package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type readOptions struct {
	comma    rune
	naValues map[string]struct{}
}

// ReadOption configures CSV/XLSX reading.
type ReadOption func(*readOptions)

// WithComma sets the CSV field delimiter. Defaults to ','.
func WithComma(c rune) ReadOption {
	return func(o *readOptions) {
		o.comma = c
	}
}

// WithNAValues replaces the set of cell values treated as missing.
// The empty string is always treated as missing.
func WithNAValues(values ...string) ReadOption {
	return func(o *readOptions) {
		o.naValues = make(map[string]struct{}, len(values)+1)
		o.naValues[""] = struct{}{}
		for _, v := range values {
			o.naValues[v] = struct{}{}
		}
	}
}

func defaultReadOptions() readOptions {
	o := readOptions{comma: ','}
	WithNAValues("NA", "N/A", "NaN", "nan", "null")(&o)
	return o
}

// ReadCSV reads a headered CSV stream into a Frame.
//
// Column types are inferred: a column whose every non-missing cell parses
// as a float becomes Numeric, anything else Categorical. Missing cells are
// NaN (numeric) or "" (categorical).
func ReadCSV(r io.Reader, opts ...ReadOption) (*Frame, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty CSV input")
		}
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cells := make([][]string, len(header))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV record: %w", err)
		}
		for j := range header {
			cells[j] = append(cells[j], strings.TrimSpace(record[j]))
		}
	}

	return fromCells(header, cells, o.naValues)
}

// fromCells builds a Frame from raw string cells with type inference.
func fromCells(header []string, cells [][]string, na map[string]struct{}) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(header))}
	for j, name := range header {
		col := inferColumn(strings.TrimSpace(name), cells[j], na)
		if err := f.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func inferColumn(name string, raw []string, na map[string]struct{}) *Column {
	numeric := true
	for _, cell := range raw {
		if _, missing := na[cell]; missing {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		values := make([]float64, len(raw))
		for i, cell := range raw {
			if _, missing := na[cell]; missing {
				values[i] = math.NaN()
				continue
			}
			values[i], _ = strconv.ParseFloat(cell, 64)
		}
		return NewNumericColumn(name, values)
	}

	values := make([]string, len(raw))
	for i, cell := range raw {
		if _, missing := na[cell]; missing {
			continue
		}
		values[i] = cell
	}
	return NewCategoricalColumn(name, values)
}
