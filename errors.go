package hkmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hkmeans/internal/kmeans"
	"github.com/hupe1980/hkmeans/sampler"
)

var (
	// ErrInvalidK is returned when fewer than two clusters are requested.
	ErrInvalidK = errors.New("k must be greater than or equal to 2")

	// ErrInvalidMaxIter is returned when maxIter is less than one.
	ErrInvalidMaxIter = errors.New("max iterations must be greater than or equal to 1")

	// ErrInvalidThreshold is returned when the convergence threshold is
	// negative (including -0) or NaN.
	ErrInvalidThreshold = errors.New("convergence threshold must not be negative")

	// ErrInvalidRGBLength is returned when an RGB buffer length is not a
	// multiple of 3.
	ErrInvalidRGBLength = errors.New("rgb length must be a multiple of 3")

	// ErrInsufficientPoints is returned when k exceeds the number of points.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrEmptyResult is returned when classifying against a result that has
	// no centroids.
	ErrEmptyResult = errors.New("result has no centroids")
)

// ErrDimensionMismatch indicates a point whose dimension differs from the
// dimension of the run.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	// Index is the offending point index, or -1 for a membership query.
	Index    int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates zero-dimensional points.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sampler.ErrInsufficientPoints) {
		return fmt.Errorf("%w: %w", ErrInsufficientPoints, err)
	}
	if errors.Is(err, kmeans.ErrTooFewCentroids) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, kmeans.ErrInvalidMaxIter) {
		return fmt.Errorf("%w: %w", ErrInvalidMaxIter, err)
	}

	return err
}
