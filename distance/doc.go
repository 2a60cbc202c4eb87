// Package distance provides vector distance calculations on float64 vectors.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (default for membership tests)
//   - MetricSquaredL2: squared Euclidean distance (used for nearest-centroid search)
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L∞ distance
//
// Clustering always uses Euclidean geometry. The other metrics exist for
// classifying new points against trained centroids.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
//	fn, _ := distance.Provider(distance.MetricManhattan)
package distance
