package kmeans

import (
	"context"
	"testing"

	"github.com/hupe1980/hkmeans/distance"
	"github.com/hupe1980/hkmeans/sampler"
	"github.com/hupe1980/hkmeans/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func newTestState(t *testing.T, seed int64, n, k, workers int) *state {
	t.Helper()

	rng := testutil.NewRNG(seed)
	points, _ := rng.GaussianClusters(n, 3, 5, 30, 4)
	initial, err := InitCentroids(points, k, sampler.NewSeeded(uint64(seed)))
	require.NoError(t, err)

	s, err := newState(context.Background(), points, initial, workers)
	require.NoError(t, err)
	return s
}

// checkAggregates verifies that counts and sums match the assignments.
func checkAggregates(t *testing.T, s *state) {
	t.Helper()

	counts := make([]int, len(s.centroids))
	sums := make([][]float64, len(s.centroids))
	for j := range sums {
		sums[j] = make([]float64, s.dim)
	}
	for i, p := range s.points {
		a := s.assign[i]
		counts[a]++
		for x, v := range p {
			sums[a][x] += v
		}
	}

	total := 0
	for j := range counts {
		total += s.counts[j]
		assert.Equal(t, counts[j], s.counts[j], "count of cluster %d", j)
		assert.InDeltaSlice(t, sums[j], s.sums[j], 1e-6, "sum of cluster %d", j)
	}
	assert.Equal(t, len(s.points), total)
}

// checkBounds verifies that every bound holds for the current centroids.
func checkBounds(t *testing.T, s *state) {
	t.Helper()

	for i, p := range s.points {
		a := s.assign[i]
		assert.GreaterOrEqual(t, s.upper[i]+eps, distance.L2(p, s.centroids[a]), "upper bound of point %d", i)
		for j, c := range s.centroids {
			if j == a {
				continue
			}
			assert.LessOrEqual(t, s.lower[i], distance.L2(p, c)+eps, "lower bound of point %d to centroid %d", i, j)
		}
	}
}

func TestNewState(t *testing.T) {
	s := newTestState(t, 1, 400, 7, 3)

	for i, p := range s.points {
		assert.Equal(t, Nearest(p, s.centroids, nil), s.assign[i])
	}
	checkAggregates(t, s)
	checkBounds(t, s)
}

func TestState_Invariants(t *testing.T) {
	ctx := context.Background()

	for _, workers := range []int{1, 4} {
		s := newTestState(t, 11, 800, 9, workers)

		prev := s.objective()
		for it := 0; it < 30; it++ {
			_, err := s.assignStep(ctx)
			require.NoError(t, err)

			// After assignment every point sits with its nearest centroid.
			for i, p := range s.points {
				best := Nearest(p, s.centroids, nil)
				if best != s.assign[i] {
					assert.InDelta(t,
						distance.SquaredL2(p, s.centroids[best]),
						distance.SquaredL2(p, s.centroids[s.assign[i]]), eps)
				}
			}
			checkAggregates(t, s)

			obj := s.objective()
			assert.LessOrEqual(t, obj, prev+eps, "assignment increased the objective")
			prev = obj

			movement, _ := s.updateStep()
			obj = s.objective()
			assert.LessOrEqual(t, obj, prev+eps, "update increased the objective")
			prev = obj

			require.NoError(t, s.correctBounds(ctx))
			checkBounds(t, s)

			if movement == 0 {
				break
			}
		}
	}
}

func TestUpdateSiblings(t *testing.T) {
	s := &state{
		centroids: [][]float64{{0, 0}, {3, 4}, {0, 1}},
		sibling:   make([]float64, 3),
	}
	s.updateSiblings()

	assert.InDelta(t, 1.0, s.sibling[0], eps)
	assert.InDelta(t, distance.L2([]float64{3, 4}, []float64{0, 1}), s.sibling[1], eps)
	assert.InDelta(t, 1.0, s.sibling[2], eps)
}

func TestLargestTwo(t *testing.T) {
	tests := []struct {
		name  string
		v     []float64
		r, r2 int
	}{
		{"Ascending", []float64{1, 2, 3}, 2, 1},
		{"Descending", []float64{3, 2, 1}, 0, 1},
		{"Ties", []float64{5, 5, 5}, 0, 1},
		{"SecondTie", []float64{1, 4, 2, 2}, 1, 2},
		{"Zeros", []float64{0, 0}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, r2 := largestTwo(tt.v)
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.r2, r2)
		})
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		want    []span
	}{
		{"Single", 10, 1, []span{{0, 10}}},
		{"NonPositive", 10, 0, []span{{0, 10}}},
		{"Even", 8, 4, []span{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"Uneven", 10, 4, []span{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{"MoreWorkersThanPoints", 3, 8, []span{{0, 1}, {1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partition(tt.n, tt.workers))
		})
	}
}

func TestDelta(t *testing.T) {
	d := newDelta(3, 2)

	d.move([]float64{1, 2}, 0, 2)
	d.move([]float64{3, 4}, 2, 1)

	assert.Equal(t, []int{-1, 1, 0}, d.counts)
	assert.Equal(t, []float64{-1, -2}, d.sums[0])
	assert.Equal(t, []float64{3, 4}, d.sums[1])
	assert.Equal(t, []float64{-2, -2}, d.sums[2])
	assert.Equal(t, []bool{true, true, true}, d.touched)

	d.stats.Reassigned = 2
	d.reset()

	assert.Equal(t, []int{0, 0, 0}, d.counts)
	for _, sum := range d.sums {
		assert.Equal(t, []float64{0, 0}, sum)
	}
	assert.Equal(t, []bool{false, false, false}, d.touched)
	assert.Zero(t, d.stats)
}
