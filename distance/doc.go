// Package distance provides Euclidean distance calculations for clustering.
//
// The clustering engine is fixed to Euclidean geometry, so this package
// covers exactly two kernels plus nearest-centroid search:
//
//   - SquaredL2: squared Euclidean distance (assignment, inertia)
//   - L2: Euclidean distance (silhouette, centroid shift)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	idx, d := distance.Nearest(vec, centroids)
package distance
