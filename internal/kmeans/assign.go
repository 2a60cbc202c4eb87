package kmeans

import (
	"context"
	"math"

	"github.com/hupe1980/hkmeans/distance"
	"gonum.org/v1/gonum/floats"
)

// updateSiblings sets sibling[j] to the distance from centroid j to its
// nearest other centroid.
func (s *state) updateSiblings() {
	k := len(s.centroids)
	for j := range s.sibling {
		s.sibling[j] = math.MaxFloat64
	}
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			d := distance.SquaredL2(s.centroids[a], s.centroids[b])
			if d < s.sibling[a] {
				s.sibling[a] = d
			}
			if d < s.sibling[b] {
				s.sibling[b] = d
			}
		}
	}
	for j, d := range s.sibling {
		s.sibling[j] = math.Sqrt(d)
	}
}

// assignStep reassigns every point whose bounds cannot rule out a closer
// centroid and folds the resulting moves into the cluster aggregates.
func (s *state) assignStep(ctx context.Context) (Stats, error) {
	s.updateSiblings()

	err := s.parallel(ctx, func(w int, sp span) {
		d := s.deltas[w]
		d.reset()
		s.assignSpan(sp, d)
	})
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, d := range s.deltas {
		stats.add(d.stats)
		for j, touched := range d.touched {
			if !touched {
				continue
			}
			s.counts[j] += d.counts[j]
			floats.Add(s.sums[j], d.sums[j])
		}
	}
	return stats, nil
}

func (s *state) assignSpan(sp span, d *delta) {
	for i := sp.lo; i < sp.hi; i++ {
		a := s.assign[i]
		m := math.Max(s.sibling[a]/2, s.lower[i])
		if s.upper[i] <= m {
			d.stats.Pruned++
			continue
		}

		p := s.points[i]
		s.upper[i] = distance.L2(p, s.centroids[a])
		if s.upper[i] <= m {
			d.stats.Tightened++
			continue
		}

		d.stats.Searched++
		best, upper, lower := nearestTwo(p, s.centroids)
		s.upper[i], s.lower[i] = upper, lower
		if best != a {
			s.assign[i] = best
			d.move(p, a, best)
			d.stats.Reassigned++
		}
	}
}
