// Package distance provides the vector distance functions used by the
// clustering core and by nearest-centroid membership tests.
package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	b = b[:len(a)]

	var sum float64
	for i, av := range a {
		d := av - b[i]
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
// It is the square root of SquaredL2, so bounds derived from either
// function stay comparable.
func L2(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Manhattan calculates the L1 distance between two vectors.
// Panics if the lengths differ.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev calculates the L∞ distance between two vectors.
// Panics if the lengths differ.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Minkowski returns an Lp distance function. p must be positive.
func Minkowski(p float64) Func {
	return func(a, b []float64) float64 {
		return floats.Distance(a, b, p)
	}
}

// Metric represents a distance metric usable for membership tests.
// Clustering itself is always Euclidean.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric maps a metric name (as returned by Metric.String, case-sensitive)
// to its Metric.
func ParseMetric(name string) (Metric, error) {
	for _, m := range []Metric{MetricL2, MetricSquaredL2, MetricManhattan, MetricChebyshev} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", name)
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
