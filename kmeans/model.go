package kmeans

import (
	"math"

	"github.com/clustergo/clustergo/distance"
)

// Model is the result of one Fit call: the winning restart's centroids,
// per-row cluster labels and total inertia.
type Model struct {
	K          int
	Dim        int
	Metric     distance.Metric
	Centroids  []float32 // flat row-major, K*Dim
	Labels     []int     // len == number of input rows, values in [0, K)
	Inertia    float64   // sum of distances to assigned centroids
	Iterations int       // Lloyd iterations of the winning restart
	Restart    int       // index of the winning restart
}

// Centroid returns centroid j as a slice aliasing the model's backing array.
func (m *Model) Centroid(j int) []float32 {
	return m.Centroids[j*m.Dim : (j+1)*m.Dim]
}

// Sizes returns the number of rows assigned to each cluster.
func (m *Model) Sizes() []int {
	sizes := make([]int, m.K)
	for _, label := range m.Labels {
		sizes[label]++
	}
	return sizes
}

// Predict assigns a new observation to its nearest centroid under the
// metric the model was fitted with. Ties are broken by the lowest cluster
// index.
func (m *Model) Predict(vec []float32) (int, error) {
	if len(vec) != m.Dim {
		return -1, &ErrDimensionMismatch{Expected: m.Dim, Actual: len(vec)}
	}
	dist, err := distance.Provider(m.Metric)
	if err != nil {
		return -1, &ErrInvalidArgument{Arg: "metric", Reason: err.Error()}
	}

	best := -1
	minDist := float32(math.MaxFloat32)
	for j := 0; j < m.K; j++ {
		d := dist(vec, m.Centroid(j))
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, nil
}
