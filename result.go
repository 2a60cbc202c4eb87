package hkmeans

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hkmeans/codebook"
	"github.com/hupe1980/hkmeans/distance"
	"github.com/hupe1980/hkmeans/internal/conv"
	"github.com/hupe1980/hkmeans/internal/kmeans"
)

// Result is the outcome of a clustering run.
type Result struct {
	// K is the requested number of clusters.
	K int `json:"k"`
	// Iterations is the number of completed iterations that did not converge.
	Iterations int `json:"it"`
	// Centroids holds one d-dimensional centroid per cluster.
	Centroids [][]float64 `json:"centroids"`
	// Assignments holds the cluster index of every input point.
	Assignments []int `json:"idxs"`
}

// Dimension returns the dimension of the centroids, or 0 for an empty result.
func (r *Result) Dimension() int {
	if len(r.Centroids) == 0 {
		return 0
	}
	return len(r.Centroids[0])
}

// Test returns the index of the centroid nearest to point under fn.
// A nil fn selects Euclidean distance. Ties resolve to the lowest index.
func (r *Result) Test(point []float64, fn distance.Func) (int, error) {
	if len(r.Centroids) == 0 {
		return 0, ErrEmptyResult
	}
	if dim := r.Dimension(); len(point) != dim {
		return 0, &ErrDimensionMismatch{Index: -1, Expected: dim, Actual: len(point)}
	}
	return kmeans.Nearest(point, r.Centroids, fn), nil
}

// PaletteRGB returns every centroid component truncated to a byte.
// For results of ClusterRGB this is the packed RGB palette.
func (r *Result) PaletteRGB() []byte {
	out := make([]byte, 0, len(r.Centroids)*r.Dimension())
	for _, c := range r.Centroids {
		for _, v := range c {
			out = append(out, conv.Float64ToUint8(v))
		}
	}
	return out
}

// Sizes returns the number of points assigned to each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, j := range r.Assignments {
		sizes[j]++
	}
	return sizes
}

// Members returns the indices of the points assigned to cluster j.
// The bitmap is empty if j is out of range.
func (r *Result) Members(j int) *roaring.Bitmap {
	bm := roaring.New()
	for i, a := range r.Assignments {
		if a == j {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Inertia returns the sum of squared distances from every point to its
// assigned centroid. points must be the points the result was computed from;
// NaN is returned if their count does not match.
func (r *Result) Inertia(points [][]float64) float64 {
	if len(points) != len(r.Assignments) {
		return math.NaN()
	}
	return kmeans.Inertia(points, r.Centroids, r.Assignments)
}

// Codebook returns a persistable copy of the centroids, or nil for an empty
// result.
func (r *Result) Codebook() *codebook.Codebook {
	cb, err := codebook.New(r.Centroids, r.Iterations)
	if err != nil {
		return nil
	}
	return cb
}
