// Package testutil provides testing utilities for hkmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for clustering inputs.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformVectors(1000, 8)                   // uniform [0, 1)
//	pts, centers := rng.GaussianClusters(1000, 8, 5, 100, 1)
//	pixels := rng.RGBPixels(4096, palette, 8)            // packed RGB bytes
package testutil
