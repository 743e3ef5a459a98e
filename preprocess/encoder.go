package preprocess

import (
	"math"
	"sort"

	"github.com/clustergo/clustergo/frame"
)

// OneHotEncoder expands categorical columns into one 0/1 numeric column per
// category. Category order is sorted, so column layout is deterministic.
// If Columns is empty, every categorical column of the fitted Frame is
// targeted. A missing cell encodes as all zeros.
type OneHotEncoder struct {
	Columns []string

	categories map[string][]string
	order      []string
}

// NewOneHotEncoder creates a OneHotEncoder for the given columns
// (all categorical columns when empty).
func NewOneHotEncoder(columns ...string) *OneHotEncoder {
	return &OneHotEncoder{Columns: columns}
}

// Fit collects the sorted set of categories per targeted column.
func (e *OneHotEncoder) Fit(f *frame.Frame) error {
	cols, err := categoricalColumns(f, e.Columns)
	if err != nil {
		return err
	}

	e.categories = make(map[string][]string, len(cols))
	e.order = e.order[:0]
	for _, c := range cols {
		e.categories[c.Name] = sortedCategories(c.Strings)
		e.order = append(e.order, c.Name)
	}

	return nil
}

// Transform replaces each targeted column with its indicator columns,
// named "column=category". Unseen categories are an error.
func (e *OneHotEncoder) Transform(f *frame.Frame) (*frame.Frame, error) {
	if e.categories == nil {
		return nil, ErrNotFitted
	}

	out := f.Clone()
	for _, name := range e.order {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}

		cats := e.categories[name]
		index := make(map[string]int, len(cats))
		for i, cat := range cats {
			index[cat] = i
		}

		indicators := make([][]float64, len(cats))
		for i := range indicators {
			indicators[i] = make([]float64, c.Len())
		}
		for row, v := range c.Strings {
			if v == "" {
				continue
			}
			i, ok := index[v]
			if !ok {
				return nil, &ErrUnknownCategory{Column: name, Value: v}
			}
			indicators[i][row] = 1
		}

		if err := out.DropColumn(name); err != nil {
			return nil, err
		}
		for i, cat := range cats {
			if err := out.AddColumn(frame.NewNumericColumn(name+"="+cat, indicators[i])); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// OrdinalEncoder maps each category of a column to its index in sorted
// order. Missing cells map to NaN; unseen categories are an error.
type OrdinalEncoder struct {
	Columns []string

	categories map[string][]string
	order      []string
}

// NewOrdinalEncoder creates an OrdinalEncoder for the given columns
// (all categorical columns when empty).
func NewOrdinalEncoder(columns ...string) *OrdinalEncoder {
	return &OrdinalEncoder{Columns: columns}
}

// Fit collects the sorted set of categories per targeted column.
func (e *OrdinalEncoder) Fit(f *frame.Frame) error {
	cols, err := categoricalColumns(f, e.Columns)
	if err != nil {
		return err
	}

	e.categories = make(map[string][]string, len(cols))
	e.order = e.order[:0]
	for _, c := range cols {
		e.categories[c.Name] = sortedCategories(c.Strings)
		e.order = append(e.order, c.Name)
	}

	return nil
}

// Transform replaces each targeted column with its ordinal codes, keeping
// the column name and position.
func (e *OrdinalEncoder) Transform(f *frame.Frame) (*frame.Frame, error) {
	if e.categories == nil {
		return nil, ErrNotFitted
	}

	out := f.Clone()
	for _, name := range e.order {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}

		index := make(map[string]int, len(e.categories[name]))
		for i, cat := range e.categories[name] {
			index[cat] = i
		}

		codes := make([]float64, c.Len())
		for row, v := range c.Strings {
			if v == "" {
				codes[row] = math.NaN()
				continue
			}
			i, ok := index[v]
			if !ok {
				return nil, &ErrUnknownCategory{Column: name, Value: v}
			}
			codes[row] = float64(i)
		}

		if err := out.ReplaceColumn(name, frame.NewNumericColumn(name, codes)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func sortedCategories(values []string) []string {
	seen := make(map[string]struct{})
	for _, v := range values {
		if v != "" {
			seen[v] = struct{}{}
		}
	}

	cats := make([]string, 0, len(seen))
	for v := range seen {
		cats = append(cats, v)
	}
	sort.Strings(cats)
	return cats
}
