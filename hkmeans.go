package hkmeans

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/hkmeans/internal/kmeans"
	"github.com/hupe1980/hkmeans/sampler"
)

// Cluster partitions points into k clusters using Hamerly's algorithm.
//
// Initial centroids are k distinct points chosen by the configured sampler
// (seed 0 by default). The run stops after maxIter iterations, when no
// centroid moves, or when the total squared centroid movement of an
// iteration falls below the convergence threshold.
//
// An empty point set yields an empty Result with K == k.
func Cluster(ctx context.Context, points [][]float64, k, maxIter int, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if err := validateParams(k, maxIter, o); err != nil {
		return nil, err
	}
	return cluster(ctx, points, k, maxIter, o)
}

func validateParams(k, maxIter int, o options) error {
	if k < 2 {
		return ErrInvalidK
	}
	if maxIter < 1 {
		return ErrInvalidMaxIter
	}
	if math.Signbit(o.threshold) || math.IsNaN(o.threshold) {
		return ErrInvalidThreshold
	}
	return nil
}

func validatePoints(points [][]float64, k int) error {
	dim := len(points[0])
	if dim == 0 {
		return &ErrInvalidDimension{Dimension: 0}
	}
	for i, p := range points {
		if len(p) != dim {
			return &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
	}
	if k > len(points) {
		return translateError(fmt.Errorf("%w: k=%d, n=%d", sampler.ErrInsufficientPoints, k, len(points)))
	}
	return nil
}

func cluster(ctx context.Context, points [][]float64, k, maxIter int, o options) (*Result, error) {
	if len(points) == 0 {
		return &Result{K: k}, nil
	}

	start := time.Now()
	res, err := run(ctx, points, k, maxIter, o)

	iterations := 0
	if res != nil {
		iterations = res.Iterations
	}
	o.metricsCollector.RecordRun(k, len(points), iterations, time.Since(start), err)
	o.logger.LogCluster(ctx, k, len(points), iterations, err)

	return res, err
}

func run(ctx context.Context, points [][]float64, k, maxIter int, o options) (*Result, error) {
	if err := validatePoints(points, k); err != nil {
		return nil, err
	}

	initial, err := kmeans.InitCentroids(points, k, o.sampler)
	if err != nil {
		return nil, translateError(err)
	}

	cfg := kmeans.Config{
		K:                    k,
		MaxIter:              maxIter,
		ConvergenceThreshold: o.threshold,
		Workers:              o.workers,
		Observer: func(s kmeans.Stats) {
			is := IterationStats(s)
			o.metricsCollector.RecordIteration(is)
			o.logger.LogIteration(ctx, is)
		},
	}

	kr, err := kmeans.TrainFrom(ctx, points, initial, cfg)
	if err != nil {
		return nil, translateError(err)
	}

	return &Result{
		K:           k,
		Iterations:  kr.Iterations,
		Centroids:   kr.Centroids,
		Assignments: kr.Assignments,
	}, nil
}
