package eval

import (
	"math"

	"github.com/gocluster/kmeans"
	"github.com/gocluster/kmeans/distance"
)

// SilhouetteSamples returns the silhouette coefficient of every point.
//
// For point i with cluster label c, a(i) is the mean distance to the
// other members of c (0 if i is the sole member), and b(i) is the lowest
// mean distance from i to the members of any other cluster. The
// coefficient is (b-a)/max(a,b), defined as 0 when the denominator is 0
// and as 0 when no other cluster exists.
//
// Distances are recomputed from scratch; the function has no dependency
// on any engine state. Fails with a dimension mismatch if points and
// labels differ in length.
func SilhouetteSamples(points [][]float64, labels []int) ([]float64, error) {
	if len(points) != len(labels) {
		return nil, &kmeans.ErrDimensionMismatch{Expected: len(points), Actual: len(labels)}
	}

	members := make(map[int][]int)
	for i, label := range labels {
		members[label] = append(members[label], i)
	}

	scores := make([]float64, len(points))
	for i, p := range points {
		own := labels[i]

		var a float64
		if size := len(members[own]); size > 1 {
			for _, j := range members[own] {
				if j != i {
					a += distance.L2(p, points[j])
				}
			}
			a /= float64(size - 1)
		}

		b := math.Inf(1)
		for label, idxs := range members {
			if label == own {
				continue
			}
			var mean float64
			for _, j := range idxs {
				mean += distance.L2(p, points[j])
			}
			mean /= float64(len(idxs))
			if mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			// Single-cluster case: separation is undefined.
			scores[i] = 0
			continue
		}

		if denom := math.Max(a, b); denom > 0 {
			scores[i] = (b - a) / denom
		}
	}

	return scores, nil
}

// SilhouetteScore returns the mean silhouette coefficient of the
// labeling, in the closed range [-1, 1].
func SilhouetteScore(points [][]float64, labels []int) (float64, error) {
	scores, err := SilhouetteSamples(points, labels)
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, nil
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), nil
}
