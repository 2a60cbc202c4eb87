// Package kmeans implements Hamerly's accelerated k-means.
//
// Train runs Lloyd-equivalent iterations while skipping distance work with
// per-point bounds:
//
//   - upper[i] bounds the distance from point i to its assigned centroid
//   - lower[i] bounds the distance to the nearest other centroid
//
// A point whose upper bound does not exceed max(lower[i], sibling/2) cannot
// have changed cluster and is skipped. Centroid sums and counts are
// maintained incrementally as points move between clusters.
//
// Lloyd is the unaccelerated reference implementation. For the same initial
// centroids both produce the same assignments and centroids up to floating
// point summation order.
package kmeans
