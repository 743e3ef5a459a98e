package preprocess

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/clustergo/clustergo/frame"
)

// ImputeStrategy selects how the Imputer fills missing numeric cells.
// Categorical cells are always filled with the most frequent category.
type ImputeStrategy int

const (
	ImputeMean ImputeStrategy = iota
	ImputeMedian
	ImputeMostFrequent
)

func (s ImputeStrategy) String() string {
	switch s {
	case ImputeMean:
		return "mean"
	case ImputeMedian:
		return "median"
	case ImputeMostFrequent:
		return "most_frequent"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Imputer fills missing cells with statistics learned at Fit time.
// If Columns is empty, every column of the fitted Frame is targeted.
type Imputer struct {
	Strategy ImputeStrategy
	Columns  []string

	numericFill     map[string]float64
	categoricalFill map[string]string
}

// NewImputer creates an Imputer for the given columns (all when empty).
func NewImputer(strategy ImputeStrategy, columns ...string) *Imputer {
	return &Imputer{Strategy: strategy, Columns: columns}
}

// Fit learns a fill value per targeted column.
func (im *Imputer) Fit(f *frame.Frame) error {
	names := im.Columns
	if len(names) == 0 {
		names = f.Names()
	}

	im.numericFill = make(map[string]float64)
	im.categoricalFill = make(map[string]string)

	for _, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		if c.Type == frame.Numeric {
			im.numericFill[name] = im.numericStatistic(c)
		} else {
			im.categoricalFill[name] = mostFrequent(c.Strings)
		}
	}

	return nil
}

// Transform returns a copy of f with missing cells filled.
func (im *Imputer) Transform(f *frame.Frame) (*frame.Frame, error) {
	if im.numericFill == nil {
		return nil, ErrNotFitted
	}

	out := f.Clone()
	for name, fill := range im.numericFill {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		for i := range c.Floats {
			if c.IsMissing(i) {
				c.Floats[i] = fill
			}
		}
	}
	for name, fill := range im.categoricalFill {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		for i := range c.Strings {
			if c.IsMissing(i) {
				c.Strings[i] = fill
			}
		}
	}

	return out, nil
}

func (im *Imputer) numericStatistic(c *frame.Column) float64 {
	present := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.IsMissing(i) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return 0
	}

	switch im.Strategy {
	case ImputeMedian:
		sort.Float64s(present)
		return stat.Quantile(0.5, stat.Empirical, present, nil)
	case ImputeMostFrequent:
		return mostFrequentFloat(present)
	default:
		return stat.Mean(present, nil)
	}
}

// mostFrequent returns the modal non-missing value; ties go to the
// lexicographically smallest so Fit is deterministic.
func mostFrequent(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}

	best, bestCount := "", -1
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

func mostFrequentFloat(values []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}

	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	best, bestCount := 0.0, -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}
