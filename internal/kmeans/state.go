package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// span is a contiguous range of point indices owned by one worker.
type span struct {
	lo, hi int
}

// delta collects one worker's aggregate changes during an assignment pass.
// Merged into the shared aggregates once all workers finish.
type delta struct {
	counts  []int
	sums    [][]float64
	touched []bool
	stats   Stats
}

func newDelta(k, dim int) *delta {
	d := &delta{
		counts:  make([]int, k),
		sums:    make([][]float64, k),
		touched: make([]bool, k),
	}
	for j := range d.sums {
		d.sums[j] = make([]float64, dim)
	}
	return d
}

func (d *delta) reset() {
	for j := range d.counts {
		d.counts[j] = 0
		if d.touched[j] {
			clear(d.sums[j])
			d.touched[j] = false
		}
	}
	d.stats = Stats{}
}

// move transfers point p from cluster from to cluster to.
func (d *delta) move(p []float64, from, to int) {
	d.counts[from]--
	floats.Sub(d.sums[from], p)
	d.touched[from] = true

	d.counts[to]++
	floats.Add(d.sums[to], p)
	d.touched[to] = true
}

// state holds all per-run data of Hamerly's algorithm.
type state struct {
	points [][]float64
	dim    int

	centroids [][]float64
	counts    []int
	sums      [][]float64
	moved     []float64
	sibling   []float64

	assign []int
	upper  []float64
	lower  []float64

	spans  []span
	deltas []*delta
}

// newState copies the initial centroids and builds the bound state with one
// full nearest/second-nearest search per point.
func newState(ctx context.Context, points [][]float64, initial [][]float64, workers int) (*state, error) {
	n, k := len(points), len(initial)
	dim := len(initial[0])

	s := &state{
		points:    points,
		dim:       dim,
		centroids: make([][]float64, k),
		counts:    make([]int, k),
		sums:      make([][]float64, k),
		moved:     make([]float64, k),
		sibling:   make([]float64, k),
		assign:    make([]int, n),
		upper:     make([]float64, n),
		lower:     make([]float64, n),
	}
	for j, c := range initial {
		s.centroids[j] = append(make([]float64, 0, dim), c...)
		s.sums[j] = make([]float64, dim)
	}

	s.spans = partition(n, workers)
	s.deltas = make([]*delta, len(s.spans))
	for i := range s.deltas {
		s.deltas[i] = newDelta(k, dim)
	}

	err := s.parallel(ctx, func(_ int, sp span) {
		for i := sp.lo; i < sp.hi; i++ {
			s.assign[i], s.upper[i], s.lower[i] = nearestTwo(s.points[i], s.centroids)
		}
	})
	if err != nil {
		return nil, err
	}

	for i, p := range s.points {
		a := s.assign[i]
		s.counts[a]++
		floats.Add(s.sums[a], p)
	}
	return s, nil
}

// partition splits n points into at most workers contiguous spans.
func partition(n, workers int) []span {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return []span{{0, n}}
	}

	size := (n + workers - 1) / workers
	spans := make([]span, 0, workers)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}
	return spans
}

// parallel runs fn once per span. A single span runs inline.
func (s *state) parallel(ctx context.Context, fn func(w int, sp span)) error {
	if len(s.spans) == 1 {
		fn(0, s.spans[0])
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for w, sp := range s.spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(w, sp)
			return nil
		})
	}
	return g.Wait()
}

// result snapshots the current centroids and assignments.
func (s *state) result(iterations int) *Result {
	centroids := make([][]float64, len(s.centroids))
	for j, c := range s.centroids {
		centroids[j] = append([]float64(nil), c...)
	}
	return &Result{
		Centroids:   centroids,
		Assignments: append([]int(nil), s.assign...),
		Iterations:  iterations,
	}
}

// objective returns the within-cluster sum of squared distances.
func (s *state) objective() float64 {
	return Inertia(s.points, s.centroids, s.assign)
}
