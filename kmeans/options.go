package kmeans

import (
	"github.com/clustergo/clustergo/distance"
)

// Defaults applied by Fit when the corresponding option is not given.
const (
	DefaultRestarts = 10
	DefaultMaxIter  = 300
	DefaultTol      = 1e-4
)

type options struct {
	seed     int64
	restarts int
	maxIter  int
	tol      float64
	parallel bool
	metric   distance.Metric
}

// Option configures a Fit call.
type Option func(*options)

// WithSeed sets the seed of the pseudo-random initialization.
// Restart r derives its own generator from seed+r, so results do not
// depend on scheduling. Defaults to 0.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRestarts sets the number of independent restarts (n_init).
// The model with the lowest inertia wins; ties go to the earliest restart.
func WithRestarts(n int) Option {
	return func(o *options) {
		o.restarts = n
	}
}

// WithMaxIter caps the number of Lloyd iterations per restart.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

// WithTol sets the convergence threshold on the summed squared centroid
// displacement between consecutive iterations.
func WithTol(tol float64) Option {
	return func(o *options) {
		o.tol = tol
	}
}

// WithMetric sets the distance used for assignment, inertia and Predict.
// MetricL2 (the default) and MetricCosine are supported; convergence is
// always measured as squared centroid displacement.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithParallel runs restarts on parallel workers. Output is identical to
// the serial run; only wall-clock time changes.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

func defaultOptions() options {
	return options{
		restarts: DefaultRestarts,
		maxIter:  DefaultMaxIter,
		tol:      DefaultTol,
	}
}
