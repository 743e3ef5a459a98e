package clustergo

import (
	"context"
	"time"

	"github.com/clustergo/clustergo/elbow"
	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/kmeans"
	"github.com/clustergo/clustergo/pca"
	"github.com/clustergo/clustergo/preprocess"
)

// Segmenter runs the full segmentation pipeline: select features, impute,
// encode, scale, cluster and project. It is immutable after New and safe
// for concurrent use.
type Segmenter struct {
	opts segmenterOptions
}

// New creates a Segmenter with the given options.
func New(opts ...Option) *Segmenter {
	o := defaultSegmenterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Segmenter{opts: o}
}

// Segmentation is the result of one Fit: labels and centroids in
// preprocessed feature space, plus an optional PCA projection for plotting.
type Segmentation struct {
	K         int
	Dim       int
	Labels    []int
	Centroids []float32 // flat row-major, K*Dim
	Inertia   float64
	Sizes     []int
	Features  []string // names of the preprocessed feature columns

	// Iterations is the Lloyd iteration count of the winning restart.
	Iterations int

	// Projection holds one row of PCA coordinates per input row, or nil
	// when projection is disabled or the data cannot support it.
	Projection    *frame.Matrix
	VarianceRatio []float64
}

// Fit preprocesses the selected feature columns of f and clusters the rows
// into k segments. An empty features slice selects every column.
func (s *Segmenter) Fit(ctx context.Context, f *frame.Frame, features []string, k int) (*Segmentation, error) {
	start := time.Now()
	seg, err := s.fit(ctx, f, features, k)
	duration := time.Since(start)

	s.opts.metrics.RecordFit(k, duration, err)

	rows := 0
	if f != nil {
		rows = f.Rows()
	}
	iterations, inertia := 0, 0.0
	if seg != nil {
		iterations = seg.Iterations
		inertia = seg.Inertia
	}
	s.opts.logger.LogFit(ctx, k, rows, iterations, inertia, duration, err)

	if err != nil {
		return nil, translateError(err)
	}
	return seg, nil
}

func (s *Segmenter) fit(ctx context.Context, f *frame.Frame, features []string, k int) (*Segmentation, error) {
	m, names, err := s.prepare(f, features)
	if err != nil {
		return nil, err
	}

	model, err := kmeans.Fit(ctx, m, k, s.fitOptions()...)
	if err != nil {
		return nil, err
	}

	seg := &Segmentation{
		K:          model.K,
		Dim:        model.Dim,
		Labels:     model.Labels,
		Centroids:  model.Centroids,
		Inertia:    model.Inertia,
		Sizes:      model.Sizes(),
		Features:   names,
		Iterations: model.Iterations,
	}

	// Projection is best-effort decoration: a frame too small or narrow
	// for the requested component count ships without coordinates.
	components := min(s.opts.components, m.Dim, m.Rows)
	if components > 0 && m.Rows >= 2 {
		coords, proj, err := pca.FitTransform(m, components)
		if err != nil {
			return nil, err
		}
		seg.Projection = coords
		seg.VarianceRatio = proj.VarianceRatio
	}

	return seg, nil
}

// SweepK fits every k in [kMin, kMax] on the preprocessed features and
// returns the elbow curve. Picking k from the curve stays with the caller.
func (s *Segmenter) SweepK(ctx context.Context, f *frame.Frame, features []string, kMin, kMax int) (elbow.Curve, error) {
	start := time.Now()
	curve, err := s.sweep(ctx, f, features, kMin, kMax)
	duration := time.Since(start)

	s.opts.metrics.RecordSweep(kMin, kMax, duration, err)

	rows := 0
	if f != nil {
		rows = f.Rows()
	}
	s.opts.logger.LogSweep(ctx, kMin, kMax, rows, duration, err)

	if err != nil {
		return nil, translateError(err)
	}
	return curve, nil
}

func (s *Segmenter) sweep(ctx context.Context, f *frame.Frame, features []string, kMin, kMax int) (elbow.Curve, error) {
	m, _, err := s.prepare(f, features)
	if err != nil {
		return nil, err
	}
	return elbow.Sweep(ctx, m, kMin, kMax, s.fitOptions()...)
}

// prepare selects the feature columns and runs the preprocessing pipeline,
// returning the feature matrix and the preprocessed column names.
func (s *Segmenter) prepare(f *frame.Frame, features []string) (*frame.Matrix, []string, error) {
	if f == nil || f.Rows() == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(features) == 0 {
		features = f.Names()
	}

	sub, err := f.Select(features...)
	if err != nil {
		return nil, nil, err
	}

	steps := []preprocess.Transformer{preprocess.NewImputer(s.opts.impute)}
	if hasCategorical(sub) {
		switch s.opts.encoder {
		case EncoderOrdinal:
			steps = append(steps, preprocess.NewOrdinalEncoder())
		default:
			steps = append(steps, preprocess.NewOneHotEncoder())
		}
	}
	switch s.opts.scaler {
	case ScalerStandard:
		steps = append(steps, preprocess.NewStandardScaler())
	case ScalerMinMax:
		steps = append(steps, preprocess.NewMinMaxScaler())
	}

	out, err := preprocess.NewPipeline(steps...).FitTransform(sub)
	if err != nil {
		return nil, nil, err
	}

	m, err := out.Matrix()
	if err != nil {
		return nil, nil, err
	}
	return m, out.Names(), nil
}

func (s *Segmenter) fitOptions() []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithSeed(s.opts.seed),
		kmeans.WithRestarts(s.opts.restarts),
		kmeans.WithMaxIter(s.opts.maxIter),
		kmeans.WithTol(s.opts.tol),
		kmeans.WithParallel(s.opts.parallel),
		kmeans.WithMetric(s.opts.metric),
	}
}

func hasCategorical(f *frame.Frame) bool {
	for _, name := range f.Names() {
		c, err := f.Column(name)
		if err != nil {
			continue
		}
		if c.Type == frame.Categorical {
			return true
		}
	}
	return false
}
