// Package testutil provides deterministic data generators for tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/clustergo/clustergo/frame"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// NormFloat32 returns a normally distributed float32 with mean 0 and
// standard deviation 1.
func (r *RNG) NormFloat32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float32(r.rand.NormFloat64())
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// Blobs generates perCluster points around each center, jittered by
// normally distributed noise with standard deviation spread. Rows are
// grouped by center, so row i belongs to center i/perCluster.
func Blobs(rng *RNG, centers [][]float32, perCluster int, spread float32) *frame.Matrix {
	if len(centers) == 0 || perCluster <= 0 {
		return &frame.Matrix{}
	}

	dim := len(centers[0])
	m := frame.NewMatrix(len(centers)*perCluster, dim)
	for c, center := range centers {
		for i := 0; i < perCluster; i++ {
			row := m.Row(c*perCluster + i)
			for j := 0; j < dim; j++ {
				row[j] = center[j] + rng.NormFloat32()*spread
			}
		}
	}

	return m
}
