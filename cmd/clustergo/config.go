package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clustergo/clustergo"
	"github.com/clustergo/clustergo/distance"
	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/preprocess"
)

// config is the YAML run description shared by the fit and sweep commands.
type config struct {
	Input    string   `yaml:"input"`
	Sheet    string   `yaml:"sheet"` // XLSX only; first sheet when empty
	Features []string `yaml:"features"`

	Impute  string `yaml:"impute"`  // mean|median|most_frequent
	Scaler  string `yaml:"scaler"`  // standard|minmax|none
	Encoder string `yaml:"encoder"` // onehot|ordinal
	Metric  string `yaml:"metric"`  // l2|cosine

	Seed     int64   `yaml:"seed"`
	Restarts int     `yaml:"restarts"`
	MaxIter  int     `yaml:"max_iter"`
	Tol      float64 `yaml:"tol"`
	Parallel bool    `yaml:"parallel"`

	K          int `yaml:"k"`
	KMin       int `yaml:"k_min"`
	KMax       int `yaml:"k_max"`
	Components int `yaml:"components"`

	Output string `yaml:"output"` // labels CSV; stdout when empty
}

func defaultConfig() config {
	return config{
		Impute:     "mean",
		Scaler:     "standard",
		Encoder:    "onehot",
		Metric:     "l2",
		Restarts:   10,
		MaxIter:    300,
		Tol:        1e-4,
		KMin:       1,
		KMax:       10,
		Components: 2,
	}
}

func loadConfig(path string) (*config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Input == "" {
		return nil, fmt.Errorf("config %s: input is required", path)
	}

	return &c, nil
}

// loadFrame reads the configured input table, dispatching on extension.
func (c *config) loadFrame() (*frame.Frame, error) {
	file, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(c.Input)) {
	case ".xlsx", ".xlsm":
		return frame.ReadXLSX(file, c.Sheet)
	default:
		return frame.ReadCSV(file)
	}
}

// segmenterOptions maps the config onto library options.
func (c *config) segmenterOptions(logger *clustergo.Logger) ([]clustergo.Option, error) {
	impute, err := parseImpute(c.Impute)
	if err != nil {
		return nil, err
	}
	scaler, err := parseScaler(c.Scaler)
	if err != nil {
		return nil, err
	}
	encoder, err := parseEncoder(c.Encoder)
	if err != nil {
		return nil, err
	}
	metric, err := parseMetric(c.Metric)
	if err != nil {
		return nil, err
	}

	return []clustergo.Option{
		clustergo.WithLogger(logger),
		clustergo.WithSeed(c.Seed),
		clustergo.WithRestarts(c.Restarts),
		clustergo.WithMaxIter(c.MaxIter),
		clustergo.WithTol(c.Tol),
		clustergo.WithParallel(c.Parallel),
		clustergo.WithMetric(metric),
		clustergo.WithProjection(c.Components),
		clustergo.WithImputeStrategy(impute),
		clustergo.WithScaler(scaler),
		clustergo.WithEncoder(encoder),
	}, nil
}

func parseImpute(s string) (preprocess.ImputeStrategy, error) {
	switch s {
	case "", "mean":
		return preprocess.ImputeMean, nil
	case "median":
		return preprocess.ImputeMedian, nil
	case "most_frequent":
		return preprocess.ImputeMostFrequent, nil
	default:
		return 0, fmt.Errorf("unknown impute strategy %q", s)
	}
}

func parseScaler(s string) (clustergo.Scaler, error) {
	switch s {
	case "", "standard":
		return clustergo.ScalerStandard, nil
	case "minmax":
		return clustergo.ScalerMinMax, nil
	case "none":
		return clustergo.ScalerNone, nil
	default:
		return 0, fmt.Errorf("unknown scaler %q", s)
	}
}

func parseMetric(s string) (distance.Metric, error) {
	switch s {
	case "", "l2":
		return distance.MetricL2, nil
	case "cosine":
		return distance.MetricCosine, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

func parseEncoder(s string) (clustergo.Encoder, error) {
	switch s {
	case "", "onehot":
		return clustergo.EncoderOneHot, nil
	case "ordinal":
		return clustergo.EncoderOrdinal, nil
	default:
		return 0, fmt.Errorf("unknown encoder %q", s)
	}
}
