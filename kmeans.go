package kmeans

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/gocluster/kmeans/distance"
)

// State is the engine's lifecycle state.
type State int

const (
	// StateUninitialized means Fit has not run yet; fit-state reads and
	// Predict fail with ErrNotFitted.
	StateUninitialized State = iota

	// StateRunning is the transient state while Fit iterates.
	StateRunning

	// StateConverged means the last Fit stopped because the overall
	// centroid shift dropped below the tolerance.
	StateConverged

	// StateExhausted means the last Fit spent its full iteration budget
	// without meeting the tolerance. This is a valid terminal state,
	// not an error.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// KMeans partitions points into k clusters by iteratively minimizing
// within-cluster squared Euclidean distance (Lloyd's algorithm).
//
// An instance owns its fit state exclusively and is not safe for
// concurrent use. Accessors return copies, never aliases into the
// internal state.
type KMeans struct {
	k         int
	maxIters  int
	tolerance float64
	rng       *rand.Rand
	logger    *Logger

	state      State
	dim        int
	centroids  [][]float64
	labels     []int
	inertia    float64
	history    [][][]float64
	iterations int
}

// New creates an engine for k clusters.
// Returns ErrInvalidConfig if k < 1, the iteration budget is < 1, or the
// tolerance is negative.
func New(k int, optFns ...Option) (*KMeans, error) {
	o := applyOptions(optFns)

	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalidConfig, k)
	}
	if o.maxIters < 1 {
		return nil, fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidConfig, o.maxIters)
	}
	if o.tolerance < 0 {
		return nil, fmt.Errorf("%w: tolerance must be non-negative, got %g", ErrInvalidConfig, o.tolerance)
	}

	return &KMeans{
		k:         k,
		maxIters:  o.maxIters,
		tolerance: o.tolerance,
		rng:       o.rng,
		logger:    o.logger,
		state:     StateUninitialized,
	}, nil
}

// K returns the configured cluster count.
func (km *KMeans) K() int { return km.k }

// Fit clusters the given points, running the assign/update loop until the
// overall centroid shift drops below the tolerance (StateConverged) or
// the iteration budget is spent (StateExhausted).
//
// A second Fit on the same instance discards all prior fit state. If
// validation or seeding fails, the prior fit state is left untouched.
func (km *KMeans) Fit(points [][]float64, method InitMethod) error {
	if err := km.fit(points, method); err != nil {
		km.logger.LogFit(len(points), km.dim, 0, km.state, 0, err)
		return err
	}
	km.logger.LogFit(len(points), km.dim, km.iterations, km.state, km.inertia, nil)
	return nil
}

func (km *KMeans) fit(points [][]float64, method InitMethod) error {
	if err := km.validatePoints(points); err != nil {
		return err
	}
	initialize, err := initProvider(method)
	if err != nil {
		return err
	}
	centroids, err := initialize(km.rng, km.logger, points, km.k)
	if err != nil {
		return err
	}

	// Commit point: all failure modes are behind us, reset prior state.
	km.state = StateRunning
	km.dim = len(points[0])
	km.centroids = centroids
	km.labels = nil
	km.inertia = 0
	km.iterations = 0
	km.history = [][][]float64{cloneCentroids(centroids)}

	for iter := 0; iter < km.maxIters; iter++ {
		labels := assign(points, km.centroids)
		next := update(points, labels, km.centroids)
		shift := centroidShift(next, km.centroids)

		km.centroids = next
		km.labels = labels
		km.history = append(km.history, cloneCentroids(next))
		km.iterations = iter + 1

		if shift < km.tolerance {
			km.state = StateConverged
			break
		}
	}
	if km.state != StateConverged {
		km.state = StateExhausted
	}

	var inertia float64
	for i, p := range points {
		inertia += distance.SquaredL2(p, km.centroids[km.labels[i]])
	}
	km.inertia = inertia

	return nil
}

// Predict assigns each point to the nearest centroid of the fitted model
// without mutating any fit state. The points may have any length but must
// match the fitted dimensionality.
func (km *KMeans) Predict(points [][]float64) ([]int, error) {
	labels, err := km.predict(points)
	km.logger.LogPredict(len(points), err)
	return labels, err
}

func (km *KMeans) predict(points [][]float64) ([]int, error) {
	if !km.fitted() {
		return nil, fmt.Errorf("%w: call Fit before Predict", ErrNotFitted)
	}
	for _, p := range points {
		if len(p) != km.dim {
			return nil, &ErrDimensionMismatch{Expected: km.dim, Actual: len(p)}
		}
	}
	return assign(points, km.centroids), nil
}

// FitPredict is Fit followed by returning the labels of the fitted input.
func (km *KMeans) FitPredict(points [][]float64, method InitMethod) ([]int, error) {
	if err := km.Fit(points, method); err != nil {
		return nil, err
	}
	return slices.Clone(km.labels), nil
}

// Centroids returns a copy of the fitted centroid set. The index position
// of a centroid is its cluster identity and is stable across iterations.
func (km *KMeans) Centroids() ([][]float64, error) {
	if !km.fitted() {
		return nil, fmt.Errorf("%w: no centroids", ErrNotFitted)
	}
	return cloneCentroids(km.centroids), nil
}

// Labels returns a copy of the label assigned to each fitted point.
// Every label is a valid centroid index in [0, k).
func (km *KMeans) Labels() ([]int, error) {
	if !km.fitted() {
		return nil, fmt.Errorf("%w: no labels", ErrNotFitted)
	}
	return slices.Clone(km.labels), nil
}

// Inertia returns the sum of squared distances from each fitted point to
// its assigned centroid, evaluated against the final centroid set.
func (km *KMeans) Inertia() (float64, error) {
	if !km.fitted() {
		return 0, fmt.Errorf("%w: no inertia", ErrNotFitted)
	}
	return km.inertia, nil
}

// History returns a copy of the per-iteration centroid snapshots: one
// entry for the initial centroids plus one per completed iteration.
// Returns an empty slice before the first Fit.
func (km *KMeans) History() [][][]float64 {
	history := make([][][]float64, len(km.history))
	for i, snapshot := range km.history {
		history[i] = cloneCentroids(snapshot)
	}
	return history
}

// State returns the engine's lifecycle state.
func (km *KMeans) State() State { return km.state }

// Converged reports whether the last Fit met the tolerance within the
// iteration budget.
func (km *KMeans) Converged() bool { return km.state == StateConverged }

// Iterations returns the number of completed iterations of the last Fit.
func (km *KMeans) Iterations() int { return km.iterations }

func (km *KMeans) fitted() bool {
	return km.state == StateConverged || km.state == StateExhausted
}

func (km *KMeans) validatePoints(points [][]float64) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty point set", ErrInvalidConfig)
	}
	dim := len(points[0])
	if dim == 0 {
		return fmt.Errorf("%w: zero-dimensional points", ErrInvalidConfig)
	}
	if km.k > len(points) {
		return fmt.Errorf("%w: k=%d exceeds point count %d", ErrInvalidConfig, km.k, len(points))
	}
	for _, p := range points {
		if len(p) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}
	return nil
}

// Assign is the pure assignment kernel: for each point, the index of the
// nearest centroid under squared Euclidean distance, ties resolving to
// the lowest index.
func Assign(points, centroids [][]float64) ([]int, error) {
	if len(centroids) == 0 {
		return nil, fmt.Errorf("%w: empty centroid set", ErrInvalidConfig)
	}
	dim := len(centroids[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}
	return assign(points, centroids), nil
}

func assign(points, centroids [][]float64) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		labels[i], _ = distance.Nearest(p, centroids)
	}
	return labels
}

// update recomputes each centroid as the coordinate-wise mean of its
// members. A cluster with no members keeps its previous centroid
// unchanged, so centroids never vanish or turn NaN.
func update(points [][]float64, labels []int, prev [][]float64) [][]float64 {
	k := len(prev)
	dim := len(prev[0])

	counts := make([]int, k)
	next := make([][]float64, k)
	for i := range next {
		next[i] = make([]float64, dim)
	}

	for i, p := range points {
		c := labels[i]
		counts[c]++
		for d, v := range p {
			next[c][d] += v
		}
	}

	for j := range next {
		if counts[j] > 0 {
			scale := 1 / float64(counts[j])
			for d := range next[j] {
				next[j][d] *= scale
			}
		} else {
			copy(next[j], prev[j])
		}
	}

	return next
}

// centroidShift is the Euclidean norm of the difference between two
// centroid sets, treating the stacked centroids as a single vector.
func centroidShift(next, prev [][]float64) float64 {
	var sum float64
	for i := range next {
		sum += distance.SquaredL2(next[i], prev[i])
	}
	return math.Sqrt(sum)
}

func cloneCentroids(centroids [][]float64) [][]float64 {
	out := make([][]float64, len(centroids))
	for i, c := range centroids {
		out[i] = slices.Clone(c)
	}
	return out
}
