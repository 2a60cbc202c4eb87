// Package sampler provides random index sources for selecting initial
// centroids.
//
// A Sampler returns k distinct indices in [0, n). The clustering core depends
// only on that contract, never on the concrete source:
//
//   - Seeded: deterministic for a given seed (reproducible runs and tests)
//   - Platform: seeded from the runtime's random source on every call
//
// Both implementations draw without replacement using a partial
// Fisher–Yates shuffle and fail with ErrInsufficientPoints when k > n.
package sampler
