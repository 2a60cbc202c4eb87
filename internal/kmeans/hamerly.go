package kmeans

import (
	"context"
	"fmt"
)

// Train selects initial centroids with cfg.Sampler and runs Hamerly's
// algorithm. points must be non-empty and share one dimension.
func Train(ctx context.Context, points [][]float64, cfg Config) (*Result, error) {
	centroids, err := InitCentroids(points, cfg.K, cfg.sampler())
	if err != nil {
		return nil, err
	}
	return TrainFrom(ctx, points, centroids, cfg)
}

// TrainFrom runs Hamerly's algorithm starting from the given centroids.
// initial is copied and never modified.
func TrainFrom(ctx context.Context, points, initial [][]float64, cfg Config) (*Result, error) {
	if err := checkInputs(points, initial, cfg); err != nil {
		return nil, err
	}

	s, err := newState(ctx, points, initial, cfg.workers())
	if err != nil {
		return nil, err
	}

	iterations := 0
	for iterations < cfg.MaxIter {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stats, err := s.assignStep(ctx)
		if err != nil {
			return nil, err
		}
		movement, empty := s.updateStep()
		if err := s.correctBounds(ctx); err != nil {
			return nil, err
		}

		stats.Iteration = iterations
		stats.Movement = movement
		stats.Empty = empty
		if cfg.Observer != nil {
			cfg.Observer(stats)
		}

		if cfg.converged(movement) {
			break
		}
		iterations++
	}

	return s.result(iterations), nil
}

func checkInputs(points, initial [][]float64, cfg Config) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if len(initial) < 2 {
		return ErrTooFewCentroids
	}
	if cfg.MaxIter < 1 {
		return ErrInvalidMaxIter
	}
	dim := len(initial[0])
	for j, c := range initial {
		if len(c) != dim {
			return fmt.Errorf("kmeans: centroid %d has dimension %d, want %d", j, len(c), dim)
		}
	}
	for i, p := range points {
		if len(p) != dim {
			return fmt.Errorf("kmeans: point %d has dimension %d, want %d", i, len(p), dim)
		}
	}
	return nil
}
