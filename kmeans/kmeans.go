package kmeans

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/clustergo/clustergo/distance"
	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/internal/math32"
)

// Fit partitions the rows of m into k clusters.
//
// Arguments are validated before any iteration begins; Fit never returns a
// partial model. The context is checked once per Lloyd iteration, so a
// caller-level deadline bounds the whole computation.
func Fit(ctx context.Context, m *frame.Matrix, k int, opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if m == nil || m.Rows == 0 {
		return nil, ErrEmptyInput
	}
	if k <= 0 {
		return nil, &ErrInvalidArgument{Arg: "k", Reason: "must be positive"}
	}
	if k > m.Rows {
		return nil, &ErrInvalidArgument{Arg: "k", Reason: "must not exceed the number of rows"}
	}
	if o.restarts <= 0 {
		return nil, &ErrInvalidArgument{Arg: "restarts", Reason: "must be positive"}
	}
	if o.maxIter <= 0 {
		return nil, &ErrInvalidArgument{Arg: "maxIter", Reason: "must be positive"}
	}
	if o.tol < 0 {
		return nil, &ErrInvalidArgument{Arg: "tol", Reason: "must be non-negative"}
	}
	if o.metric == distance.MetricDot {
		return nil, &ErrInvalidArgument{Arg: "metric", Reason: "dot similarity can be negative; use L2 or Cosine"}
	}
	dist, err := distance.Provider(o.metric)
	if err != nil {
		return nil, &ErrInvalidArgument{Arg: "metric", Reason: err.Error()}
	}

	results := make([]*fitResult, o.restarts)

	if o.parallel && o.restarts > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for r := 0; r < o.restarts; r++ {
			r := r
			g.Go(func() error {
				rng := rand.New(rand.NewSource(o.seed + int64(r))) // nolint gosec
				res, err := runRestart(gctx, m.Data, m.Rows, m.Dim, k, o.maxIter, o.tol, dist, rng)
				if err != nil {
					return err
				}
				results[r] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for r := 0; r < o.restarts; r++ {
			rng := rand.New(rand.NewSource(o.seed + int64(r))) // nolint gosec
			res, err := runRestart(ctx, m.Data, m.Rows, m.Dim, k, o.maxIter, o.tol, dist, rng)
			if err != nil {
				return nil, err
			}
			results[r] = res
		}
	}

	// Minimum-inertia reduction in restart order keeps ties deterministic.
	best, bestIdx := results[0], 0
	for r := 1; r < o.restarts; r++ {
		if results[r].inertia < best.inertia {
			best, bestIdx = results[r], r
		}
	}

	return &Model{
		K:          k,
		Dim:        m.Dim,
		Metric:     o.metric,
		Centroids:  best.centroids,
		Labels:     best.labels,
		Inertia:    best.inertia,
		Iterations: best.iterations,
		Restart:    bestIdx,
	}, nil
}

// fitResult is the outcome of a single restart. history records the inertia
// observed at each assignment step, final assignment included.
type fitResult struct {
	centroids  []float32
	labels     []int
	inertia    float64
	iterations int
	history    []float64
}

func runRestart(ctx context.Context, data []float32, rows, dim, k, maxIter int, tol float64, dist distance.Func, rng *rand.Rand) (*fitResult, error) {
	centroids := seedPlusPlus(data, rows, dim, k, dist, rng)
	return lloyd(ctx, data, rows, dim, k, maxIter, tol, dist, centroids)
}

// seedPlusPlus picks k initial centroids: the first uniformly at random,
// each subsequent one with probability proportional to the distance to its
// nearest already-chosen centroid.
func seedPlusPlus(data []float32, rows, dim, k int, dist distance.Func, rng *rand.Rand) []float32 {
	centroids := make([]float32, k*dim)

	first := rng.Intn(rows)
	copy(centroids[:dim], data[first*dim:(first+1)*dim])

	minDist := make([]float64, rows)
	for i := 0; i < rows; i++ {
		minDist[i] = float64(dist(data[i*dim:(i+1)*dim], centroids[:dim]))
	}

	for c := 1; c < k; c++ {
		var total float64
		for _, d := range minDist {
			total += d
		}

		var idx int
		if total == 0 {
			// All remaining mass is on duplicates of chosen centroids.
			idx = rng.Intn(rows)
		} else {
			target := rng.Float64() * total
			cum := 0.0
			idx = rows - 1
			for i, d := range minDist {
				cum += d
				if cum > target {
					idx = i
					break
				}
			}
		}

		center := centroids[c*dim : (c+1)*dim]
		copy(center, data[idx*dim:(idx+1)*dim])

		for i := 0; i < rows; i++ {
			if d := float64(dist(data[i*dim:(i+1)*dim], center)); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centroids
}

// lloyd iterates assignment and centroid update until the summed squared
// centroid displacement is at or below tol, or maxIter is reached.
func lloyd(ctx context.Context, data []float32, rows, dim, k, maxIter int, tol float64, dist distance.Func, centroids []float32) (*fitResult, error) {
	labels := make([]int, rows)
	dists := make([]float32, rows)
	sums := make([]float32, k*dim)
	counts := make([]int, k)
	prev := make([]float32, k*dim)

	res := &fitResult{centroids: centroids}

	for iter := 0; iter < maxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res.iterations = iter + 1

		inertia := assign(data, rows, dim, k, dist, centroids, labels, dists)
		res.history = append(res.history, inertia)

		// Update step.
		for i := range sums {
			sums[i] = 0
		}
		for j := range counts {
			counts[j] = 0
		}
		for i := 0; i < rows; i++ {
			j := labels[i]
			math32.AddInPlace(sums[j*dim:(j+1)*dim], data[i*dim:(i+1)*dim])
			counts[j]++
		}

		copy(prev, centroids)
		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				continue
			}
			scale := 1.0 / float32(counts[j])
			for d := 0; d < dim; d++ {
				centroids[j*dim+d] = sums[j*dim+d] * scale
			}
		}

		// Reseed empty clusters to the rows farthest from their assigned
		// centroids, lowest cluster index served first.
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				continue
			}
			far := 0
			for i := 1; i < rows; i++ {
				if dists[i] > dists[far] {
					far = i
				}
			}
			copy(centroids[j*dim:(j+1)*dim], data[far*dim:(far+1)*dim])
			labels[far] = j
			counts[j] = 1
			dists[far] = 0
		}

		var displacement float64
		for j := 0; j < k; j++ {
			displacement += float64(distance.SquaredL2(prev[j*dim:(j+1)*dim], centroids[j*dim:(j+1)*dim]))
		}
		if displacement <= tol {
			break
		}
	}

	// Final assignment so labels and inertia reflect the returned centroids.
	res.inertia = assign(data, rows, dim, k, dist, centroids, labels, dists)
	res.history = append(res.history, res.inertia)
	res.labels = labels

	return res, nil
}

// assign writes the nearest-centroid label and distance for every row and
// returns the total inertia. Ties go to the lowest cluster index.
func assign(data []float32, rows, dim, k int, dist distance.Func, centroids []float32, labels []int, dists []float32) float64 {
	var inertia float64
	for i := 0; i < rows; i++ {
		vec := data[i*dim : (i+1)*dim]

		best := -1
		minDist := float32(math.MaxFloat32)
		for j := 0; j < k; j++ {
			d := dist(vec, centroids[j*dim:(j+1)*dim])
			if d < minDist {
				minDist = d
				best = j
			}
		}

		labels[i] = best
		dists[i] = minDist
		inertia += float64(minDist)
	}

	return inertia
}
