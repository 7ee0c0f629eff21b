// Package kmeans implements Lloyd's algorithm for k-means clustering of
// real-valued points, with random and k-means++ centroid seeding.
//
// # Quick Start
//
//	km, _ := kmeans.New(2, kmeans.WithSeed(42))
//	if err := km.Fit(points, kmeans.InitKMeansPlusPlus); err != nil {
//	    log.Fatal(err)
//	}
//	labels, _ := km.Labels()
//	inertia, _ := km.Inertia()
//
// Each engine instance owns its fit state (centroids, labels, inertia,
// per-iteration centroid history) exclusively; accessors return copies.
// Fitting the same instance again fully resets that state.
//
// The engine is fixed to Euclidean distance. Termination is either
// StateConverged (centroid shift below tolerance) or StateExhausted
// (iteration budget spent) — both are valid terminal states and callers
// can distinguish them via State or Converged.
//
// Randomness comes from a constructor-injected source (WithSeed or
// WithRandSource). Omitting both yields non-deterministic initialization
// across runs, which affects the convergence path and final inertia but
// not any correctness contract.
//
// Partition quality metrics (silhouette score, elbow curve) live in the
// eval subpackage.
package kmeans
