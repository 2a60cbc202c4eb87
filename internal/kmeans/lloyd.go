package kmeans

import (
	"context"

	"gonum.org/v1/gonum/floats"
)

// Lloyd runs the unaccelerated algorithm from the given initial centroids:
// every iteration recomputes each point's nearest centroid and rebuilds all
// cluster sums from scratch. It shares Train's stopping rule and empty
// cluster policy and serves as its reference.
func Lloyd(ctx context.Context, points, initial [][]float64, cfg Config) (*Result, error) {
	if err := checkInputs(points, initial, cfg); err != nil {
		return nil, err
	}

	k, dim := len(initial), len(initial[0])
	centroids := make([][]float64, k)
	sums := make([][]float64, k)
	for j, c := range initial {
		centroids[j] = append(make([]float64, 0, dim), c...)
		sums[j] = make([]float64, dim)
	}
	counts := make([]int, k)
	assignments := make([]int, len(points))

	iterations := 0
	for iterations < cfg.MaxIter {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Assignment step
		reassigned := 0
		for i, p := range points {
			best := Nearest(p, centroids, nil)
			if best != assignments[i] {
				reassigned++
			}
			assignments[i] = best
		}

		// Update step
		for j := range sums {
			clear(sums[j])
			counts[j] = 0
		}
		for i, p := range points {
			floats.Add(sums[assignments[i]], p)
			counts[assignments[i]]++
		}

		var movement float64
		empty := 0
		for j, c := range centroids {
			if counts[j] == 0 {
				empty++
				continue
			}
			n := float64(counts[j])
			var sq float64
			for x, prev := range c {
				c[x] = sums[j][x] / n
				diff := prev - c[x]
				sq += diff * diff
			}
			movement += sq
		}

		if cfg.Observer != nil {
			cfg.Observer(Stats{
				Iteration:  iterations,
				Searched:   len(points),
				Reassigned: reassigned,
				Empty:      empty,
				Movement:   movement,
			})
		}

		if cfg.converged(movement) {
			break
		}
		iterations++
	}

	return &Result{
		Centroids:   centroids,
		Assignments: assignments,
		Iterations:  iterations,
	}, nil
}
