package kmeans

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/gocluster/kmeans/distance"
)

// InitMethod selects the centroid seeding strategy for Fit.
type InitMethod int

const (
	// InitRandom draws each centroid coordinate independently and
	// uniformly from the bounding box of the point set. Centroids are
	// synthesized positions, not sampled points, and carry no
	// uniqueness guarantee.
	InitRandom InitMethod = iota

	// InitKMeansPlusPlus seeds greedily: the first centroid is a point
	// sampled uniformly from the set, and each subsequent centroid is a
	// point sampled with probability proportional to its squared
	// distance to the nearest already-chosen centroid.
	InitKMeansPlusPlus
)

func (m InitMethod) String() string {
	switch m {
	case InitRandom:
		return "random"
	case InitKMeansPlusPlus:
		return "kmeans++"
	default:
		return "unknown"
	}
}

// ParseInitMethod maps a strategy name to its InitMethod.
// Recognized names are "random" and "kmeans++".
func ParseInitMethod(s string) (InitMethod, error) {
	switch s {
	case "random":
		return InitRandom, nil
	case "kmeans++":
		return InitKMeansPlusPlus, nil
	default:
		return 0, &ErrInvalidInitMethod{Method: s}
	}
}

// initFunc produces exactly k centroids matching the point set's
// dimensionality.
type initFunc func(rng *rand.Rand, logger *Logger, points [][]float64, k int) ([][]float64, error)

// initProvider returns the initializer for the given method.
func initProvider(m InitMethod) (initFunc, error) {
	switch m {
	case InitRandom:
		return randomInit, nil
	case InitKMeansPlusPlus:
		return kmeansPlusPlusInit, nil
	default:
		return nil, &ErrInvalidInitMethod{Method: m.String()}
	}
}

// randomInit draws every centroid coordinate uniformly from the closed
// per-coordinate [min, max] interval of the point set.
func randomInit(rng *rand.Rand, _ *Logger, points [][]float64, k int) ([][]float64, error) {
	dim := len(points[0])

	lo := slices.Clone(points[0])
	hi := slices.Clone(points[0])
	for _, p := range points[1:] {
		for d, v := range p {
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}

	centroids := make([][]float64, k)
	for i := range centroids {
		c := make([]float64, dim)
		for d := range c {
			c[d] = lo[d] + rng.Float64()*(hi[d]-lo[d])
		}
		centroids[i] = c
	}

	return centroids, nil
}

// kmeansPlusPlusInit seeds centroids from the point set, biased toward
// points far from already-chosen centroids.
//
// When every point coincides with a chosen centroid the weighted
// distribution is undefined; seeding falls back to uniform sampling over
// the point set for that draw. Non-finite probability mass (NaN or Inf
// coordinates in the input) fails with ErrDegenerateInput instead of
// silently producing NaN centroids.
func kmeansPlusPlusInit(rng *rand.Rand, logger *Logger, points [][]float64, k int) ([][]float64, error) {
	n := len(points)

	centroids := make([][]float64, 0, k)
	centroids = append(centroids, slices.Clone(points[rng.Intn(n)]))

	// minDistSq tracks each point's squared distance to its nearest
	// chosen centroid.
	minDistSq := make([]float64, n)
	var sum float64
	for i, p := range points {
		d := distance.SquaredL2(p, centroids[0])
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return nil, fmt.Errorf("%w: non-finite distance mass during kmeans++ seeding", ErrDegenerateInput)
		}

		var chosen int
		if sum == 0 {
			logger.Warn("kmeans++ distribution degenerate, falling back to uniform sampling",
				"centroid", c,
			)
			chosen = rng.Intn(n)
		} else {
			// Sample proportional to squared distance: pick the first
			// point whose cumulative mass reaches the target.
			target := rng.Float64() * sum
			var cumsum float64
			for i, d := range minDistSq {
				cumsum += d
				if cumsum >= target {
					chosen = i
					break
				}
			}
		}
		centroids = append(centroids, slices.Clone(points[chosen]))

		// Update minDistSq incrementally (O(n) per centroid).
		sum = 0
		for i, p := range points {
			if d := distance.SquaredL2(p, centroids[c]); d < minDistSq[i] {
				minDistSq[i] = d
			}
			sum += minDistSq[i]
		}
	}

	return centroids, nil
}
