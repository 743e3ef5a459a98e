package clustergo

import (
	"github.com/clustergo/clustergo/distance"
	"github.com/clustergo/clustergo/preprocess"
)

// Scaler selects the feature scaling applied before clustering.
type Scaler int

const (
	// ScalerStandard standardizes features to zero mean and unit variance.
	ScalerStandard Scaler = iota
	// ScalerMinMax rescales features to [0, 1].
	ScalerMinMax
	// ScalerNone disables scaling.
	ScalerNone
)

// Encoder selects how categorical feature columns become numeric.
type Encoder int

const (
	// EncoderOneHot expands each category into a 0/1 indicator column.
	EncoderOneHot Encoder = iota
	// EncoderOrdinal maps categories to their sorted index.
	EncoderOrdinal
)

type segmenterOptions struct {
	logger     *Logger
	metrics    MetricsCollector
	seed       int64
	restarts   int
	maxIter    int
	tol        float64
	parallel   bool
	metric     distance.Metric
	components int
	impute     preprocess.ImputeStrategy
	scaler     Scaler
	encoder    Encoder
}

// Option configures a Segmenter.
type Option func(*segmenterOptions)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *Logger) Option {
	return func(o *segmenterOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics sink. Defaults to a no-op collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *segmenterOptions) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithSeed seeds the pseudo-random initialization of every fit.
func WithSeed(seed int64) Option {
	return func(o *segmenterOptions) {
		o.seed = seed
	}
}

// WithRestarts sets the number of independent k-means restarts per fit.
func WithRestarts(n int) Option {
	return func(o *segmenterOptions) {
		o.restarts = n
	}
}

// WithMaxIter caps the Lloyd iterations per restart.
func WithMaxIter(n int) Option {
	return func(o *segmenterOptions) {
		o.maxIter = n
	}
}

// WithTol sets the convergence threshold on centroid movement.
func WithTol(tol float64) Option {
	return func(o *segmenterOptions) {
		o.tol = tol
	}
}

// WithParallel runs restarts on parallel workers.
func WithParallel(parallel bool) Option {
	return func(o *segmenterOptions) {
		o.parallel = parallel
	}
}

// WithMetric sets the distance used to assign rows to clusters.
// Defaults to distance.MetricL2.
func WithMetric(m distance.Metric) Option {
	return func(o *segmenterOptions) {
		o.metric = m
	}
}

// WithProjection sets the number of PCA components attached to a fit
// result for plotting. 0 disables the projection. Defaults to 2.
func WithProjection(components int) Option {
	return func(o *segmenterOptions) {
		o.components = components
	}
}

// WithImputeStrategy sets how missing cells are filled before clustering.
func WithImputeStrategy(s preprocess.ImputeStrategy) Option {
	return func(o *segmenterOptions) {
		o.impute = s
	}
}

// WithScaler sets the feature scaling step.
func WithScaler(s Scaler) Option {
	return func(o *segmenterOptions) {
		o.scaler = s
	}
}

// WithEncoder sets the categorical encoding step.
func WithEncoder(e Encoder) Option {
	return func(o *segmenterOptions) {
		o.encoder = e
	}
}

func defaultSegmenterOptions() segmenterOptions {
	return segmenterOptions{
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
		restarts:   10,
		maxIter:    300,
		tol:        1e-4,
		metric:     distance.MetricL2,
		components: 2,
		impute:     preprocess.ImputeMean,
		scaler:     ScalerStandard,
		encoder:    EncoderOneHot,
	}
}
