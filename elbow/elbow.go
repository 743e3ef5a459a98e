// Package elbow sweeps cluster counts and reports the inertia curve used
// by the elbow heuristic.
//
// Picking k stays a caller decision: Sweep only produces the (k, inertia)
// pairs, and Knee offers a suggestion computed from the curve's shape.
package elbow

import (
	"context"
	"math"

	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/kmeans"
)

// Point is one sweep sample: the inertia of the best fit at a given k.
type Point struct {
	K       int
	Inertia float64
}

// Curve is a sweep result ordered by ascending k.
type Curve []Point

// Sweep fits the matrix once per k in [kMin, kMax] and collects the
// resulting inertias. Fit options (seed, restarts, tolerance, parallelism)
// are passed through to every fit.
func Sweep(ctx context.Context, m *frame.Matrix, kMin, kMax int, opts ...kmeans.Option) (Curve, error) {
	if kMin <= 0 {
		return nil, &kmeans.ErrInvalidArgument{Arg: "kMin", Reason: "must be positive"}
	}
	if kMax < kMin {
		return nil, &kmeans.ErrInvalidArgument{Arg: "kMax", Reason: "must not be below kMin"}
	}

	curve := make(Curve, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		model, err := kmeans.Fit(ctx, m, k, opts...)
		if err != nil {
			return nil, err
		}
		curve = append(curve, Point{K: k, Inertia: model.Inertia})
	}

	return curve, nil
}

// Knee suggests the k at the curve's point of diminishing returns: the
// sample with the largest perpendicular distance to the chord between the
// first and last points, after normalizing both axes to [0, 1].
//
// The second return is false when the curve is too short or too flat to
// carry a knee.
func (c Curve) Knee() (int, bool) {
	if len(c) < 3 {
		return 0, false
	}

	first, last := c[0], c[len(c)-1]
	kSpan := float64(last.K - first.K)
	iSpan := first.Inertia - last.Inertia
	if kSpan == 0 || iSpan <= 0 {
		return 0, false
	}

	bestK, bestDist := 0, 0.0
	for _, p := range c[1 : len(c)-1] {
		// Normalized coordinates: x grows with k, y falls with inertia.
		x := float64(p.K-first.K) / kSpan
		y := (first.Inertia - p.Inertia) / iSpan

		// Distance to the chord y = x (normalized endpoints are (0,0)
		// and (1,1)).
		dist := (y - x) / math.Sqrt2
		if dist > bestDist {
			bestK, bestDist = p.K, dist
		}
	}

	if bestK == 0 {
		return 0, false
	}
	return bestK, true
}
