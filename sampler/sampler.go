package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInsufficientPoints is returned when more distinct indices are requested
// than there are points.
var ErrInsufficientPoints = errors.New("insufficient points")

// Sampler selects k distinct indices from [0, n).
// Implementations must be safe for concurrent use.
type Sampler interface {
	Sample(n, k int) ([]int, error)
}

// Seeded is a deterministic Sampler. Every call with the same (n, k) returns
// the same indices.
type Seeded struct {
	seed uint64
}

// NewSeeded creates a deterministic sampler for the given seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{seed: seed}
}

// Seed returns the configured seed.
func (s *Seeded) Seed() uint64 {
	return s.seed
}

// Sample implements Sampler.
func (s *Seeded) Sample(n, k int) ([]int, error) {
	rng := rand.New(rand.NewPCG(s.seed, s.seed))
	return sample(n, k, rng.IntN)
}

// Platform draws from a fresh runtime-seeded source on each call.
type Platform struct{}

// Sample implements Sampler.
func (Platform) Sample(n, k int) ([]int, error) {
	return sample(n, k, rand.IntN)
}

// sample performs a partial Fisher–Yates shuffle over a virtual identity
// permutation; only swapped slots are materialized, so memory is O(k).
func sample(n, k int, intN func(int) int) ([]int, error) {
	if k < 0 || n < 0 {
		return nil, fmt.Errorf("sampler: invalid arguments n=%d k=%d", n, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientPoints, k, n)
	}

	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + intN(n-i)
		vi, vj := at(i), at(j)
		swapped[j] = vi
		swapped[i] = vj
		out[i] = vj
	}
	return out, nil
}
