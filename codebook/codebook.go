package codebook

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/hkmeans/distance"
	"github.com/hupe1980/hkmeans/internal/conv"
	"github.com/hupe1980/hkmeans/internal/kmeans"
)

var (
	// ErrEmpty is returned when a codebook has no centroids.
	ErrEmpty = errors.New("codebook: no centroids")
	// ErrNotRGB is returned by PaletteRGB for codebooks that are not 3-dimensional.
	ErrNotRGB = errors.New("codebook: not an rgb codebook")
)

// Codebook is a trained set of centroids that can classify new points.
type Codebook struct {
	K          int         `json:"k"`
	Dim        int         `json:"dim"`
	Iterations int         `json:"it"`
	Centroids  [][]float64 `json:"centroids"`
}

// New creates a codebook from a copy of centroids.
func New(centroids [][]float64, iterations int) (*Codebook, error) {
	if len(centroids) == 0 {
		return nil, ErrEmpty
	}

	cb := &Codebook{
		K:          len(centroids),
		Dim:        len(centroids[0]),
		Iterations: iterations,
		Centroids:  make([][]float64, len(centroids)),
	}
	for j, c := range centroids {
		cb.Centroids[j] = slices.Clone(c)
	}
	if err := cb.validate(); err != nil {
		return nil, err
	}
	return cb, nil
}

func (cb *Codebook) validate() error {
	if cb.K == 0 || len(cb.Centroids) == 0 {
		return ErrEmpty
	}
	if cb.K != len(cb.Centroids) {
		return fmt.Errorf("codebook: k is %d but %d centroids are stored", cb.K, len(cb.Centroids))
	}
	if cb.Dim < 1 {
		return fmt.Errorf("codebook: invalid dimension %d", cb.Dim)
	}
	for j, c := range cb.Centroids {
		if len(c) != cb.Dim {
			return fmt.Errorf("codebook: centroid %d has dimension %d, want %d", j, len(c), cb.Dim)
		}
	}
	return nil
}

// Nearest returns the index of the centroid closest to point under fn.
// A nil fn selects Euclidean distance.
func (cb *Codebook) Nearest(point []float64, fn distance.Func) (int, error) {
	if len(point) != cb.Dim {
		return 0, fmt.Errorf("codebook: point has dimension %d, want %d", len(point), cb.Dim)
	}
	return kmeans.Nearest(point, cb.Centroids, fn), nil
}

// PaletteRGB returns the centroids as packed RGB bytes, each component
// truncated to [0, 255].
func (cb *Codebook) PaletteRGB() ([]byte, error) {
	if cb.Dim != 3 {
		return nil, ErrNotRGB
	}
	return conv.PointsToRGB(cb.Centroids)
}
