// Package conv provides safe type conversion utilities.
//
// The integer conversions perform bounds checking to prevent overflow when
// converting between Go's int and the fixed-width types used in codebook
// headers. The color conversions move between packed RGB bytes and
// float64 points.
//
// Use cases:
//   - Validating untrusted data from storage (header sizes, counts)
//   - Promoting pixels to points and truncating centroids back to colors
package conv
