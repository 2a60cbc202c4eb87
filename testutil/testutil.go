package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates vectors with standard normal components.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianClusters generates num points around clusters random centers
// drawn uniformly from [0, scale)^dim. Point i belongs to center i%clusters
// and is offset by Gaussian noise with standard deviation spread.
// Returns the points and the centers.
func (r *RNG) GaussianClusters(num, dim, clusters int, scale, spread float64) ([][]float64, [][]float64) {
	centers := r.UniformVectors(clusters, dim)
	for _, c := range centers {
		floats.Scale(scale, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		center := centers[i%clusters]
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = center[j] + r.rand.NormFloat64()*spread
		}
		points[i] = vec
	}

	return points, centers
}

// RGBPixels generates n packed RGB triples drawn from the given palette
// colors, each component jittered by at most jitter and clamped to [0, 255].
func (r *RNG) RGBPixels(n int, palette [][3]uint8, jitter int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, 0, n*3)
	for i := range n {
		c := palette[i%len(palette)]
		for _, v := range c {
			x := int(v)
			if jitter > 0 {
				x += r.rand.Intn(2*jitter+1) - jitter
			}
			out = append(out, uint8(max(0, min(255, x))))
		}
	}
	return out
}
