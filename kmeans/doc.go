// Package kmeans implements k-means clustering over dense float32 matrices.
//
// Fit runs Lloyd's algorithm with seeded k-means++ initialization and
// multiple independent restarts, keeping the model with the lowest inertia.
// Results are fully deterministic for a given seed, whether restarts run
// serially or on parallel workers.
package kmeans
