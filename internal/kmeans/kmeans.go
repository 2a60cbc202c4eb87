package kmeans

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/hkmeans/distance"
	"github.com/hupe1980/hkmeans/sampler"
)

var (
	// ErrNoPoints is returned when training is attempted on an empty point set.
	ErrNoPoints = errors.New("kmeans: no points")
	// ErrTooFewCentroids is returned when fewer than two centroids are requested.
	ErrTooFewCentroids = errors.New("kmeans: at least two centroids are required")
	// ErrInvalidMaxIter is returned when MaxIter is not positive.
	ErrInvalidMaxIter = errors.New("kmeans: max iterations must be positive")
)

// Config controls a training run.
type Config struct {
	// K is the number of centroids. Ignored by TrainFrom and Lloyd, which use
	// the number of initial centroids.
	K int

	// MaxIter is the iteration ceiling.
	MaxIter int

	// ConvergenceThreshold stops the run once the total squared centroid
	// movement of an iteration falls below it. A run also stops when no
	// centroid moved at all.
	ConvergenceThreshold float64

	// Workers is the number of goroutines used by the per-point passes.
	// Values <= 1 run single-threaded.
	Workers int

	// Sampler picks the initial centroids. Defaults to sampler.NewSeeded(0).
	Sampler sampler.Sampler

	// Observer, if set, is called once per iteration after bound correction.
	Observer func(Stats)
}

func (c Config) sampler() sampler.Sampler {
	if c.Sampler == nil {
		return sampler.NewSeeded(0)
	}
	return c.Sampler
}

func (c Config) workers() int {
	if c.Workers <= 1 {
		return 1
	}
	return c.Workers
}

func (c Config) converged(movement float64) bool {
	return movement == 0 || movement < c.ConvergenceThreshold
}

// Stats describes the work performed by a single iteration.
type Stats struct {
	// Iteration is the zero-based iteration index.
	Iteration int
	// Pruned counts points skipped by the bound test without any distance work.
	Pruned int
	// Tightened counts points skipped after recomputing only the upper bound.
	Tightened int
	// Searched counts points that needed a full nearest-centroid search.
	Searched int
	// Reassigned counts points that changed cluster.
	Reassigned int
	// Empty counts centroids with no assigned points after the update.
	Empty int
	// Movement is the total squared distance moved by all centroids.
	Movement float64
}

func (s *Stats) add(o Stats) {
	s.Pruned += o.Pruned
	s.Tightened += o.Tightened
	s.Searched += o.Searched
	s.Reassigned += o.Reassigned
}

// Result is the outcome of a training run.
type Result struct {
	Centroids   [][]float64
	Assignments []int
	Iterations  int
}

// InitCentroids copies k distinct points chosen by smp.
func InitCentroids(points [][]float64, k int, smp sampler.Sampler) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if k < 2 {
		return nil, ErrTooFewCentroids
	}

	idx, err := smp.Sample(len(points), k)
	if err != nil {
		return nil, err
	}

	centroids := make([][]float64, k)
	for j, i := range idx {
		if i < 0 || i >= len(points) {
			return nil, fmt.Errorf("kmeans: sampler returned index %d out of range [0, %d)", i, len(points))
		}
		centroids[j] = slices.Clone(points[i])
	}
	return centroids, nil
}

// Nearest returns the index of the centroid closest to point under fn.
// A nil fn selects Euclidean distance. Ties resolve to the lowest index.
func Nearest(point []float64, centroids [][]float64, fn distance.Func) int {
	if fn == nil {
		fn = distance.SquaredL2
	}

	best := 0
	minDist := math.MaxFloat64
	for j, c := range centroids {
		if d := fn(point, c); d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}

// nearestTwo returns the nearest centroid and the true distances to it and
// to the nearest other centroid. Requires len(centroids) >= 2.
func nearestTwo(point []float64, centroids [][]float64) (int, float64, float64) {
	best := 0
	first, second := math.MaxFloat64, math.MaxFloat64
	for j, c := range centroids {
		d := distance.SquaredL2(point, c)
		if d < first {
			second = first
			first = d
			best = j
		} else if d < second {
			second = d
		}
	}
	return best, math.Sqrt(first), math.Sqrt(second)
}

// Inertia returns the sum of squared Euclidean distances from every point to
// its assigned centroid.
func Inertia(points, centroids [][]float64, assignments []int) float64 {
	var sum float64
	for i, p := range points {
		sum += distance.SquaredL2(p, centroids[assignments[i]])
	}
	return sum
}
