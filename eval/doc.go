// Package eval provides partition quality metrics for k-means results.
//
// Both metrics consume the engine's outputs (labels, inertia) without
// touching its internal state:
//
//   - SilhouetteScore / SilhouetteSamples: cohesion vs. separation of a
//     labeling, in [-1, 1].
//   - ElbowCurve: final inertia for every cluster count in 1..maxK, the
//     classic diagnostic for choosing k.
package eval
