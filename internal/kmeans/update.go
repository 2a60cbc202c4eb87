package kmeans

import (
	"context"
	"math"
)

// updateStep moves every non-empty centroid to the mean of its cluster and
// returns the total squared movement and the number of empty clusters.
// Empty clusters keep their position.
func (s *state) updateStep() (float64, int) {
	var total float64
	empty := 0
	for j, c := range s.centroids {
		if s.counts[j] == 0 {
			s.moved[j] = 0
			empty++
			continue
		}

		n := float64(s.counts[j])
		sum := s.sums[j]
		var sq float64
		for x, prev := range c {
			c[x] = sum[x] / n
			diff := prev - c[x]
			sq += diff * diff
		}
		s.moved[j] = math.Sqrt(sq)
		total += sq
	}
	return total, empty
}

// largestTwo returns the indices of the largest and second-largest values.
// Ties resolve to the lowest index. Requires len(v) >= 2.
func largestTwo(v []float64) (int, int) {
	r := 0
	for j := 1; j < len(v); j++ {
		if v[j] > v[r] {
			r = j
		}
	}
	r2 := -1
	for j, x := range v {
		if j == r {
			continue
		}
		if r2 < 0 || x > v[r2] {
			r2 = j
		}
	}
	return r, r2
}

// correctBounds widens every point's bounds by the centroid movement of the
// last update so they remain valid for the new positions.
func (s *state) correctBounds(ctx context.Context) error {
	r, r2 := largestTwo(s.moved)
	return s.parallel(ctx, func(_ int, sp span) {
		for i := sp.lo; i < sp.hi; i++ {
			a := s.assign[i]
			s.upper[i] += s.moved[a]
			if a == r {
				s.lower[i] -= s.moved[r2]
			} else {
				s.lower[i] -= s.moved[r]
			}
		}
	})
}
