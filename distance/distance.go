package distance

import "math"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Nearest returns the index of the centroid closest to vec and the squared
// L2 distance to it. Ties (exact distance equality) resolve to the lowest
// index. Returns -1 and +Inf for an empty centroid set.
func Nearest(vec []float64, centroids [][]float64) (int, float64) {
	best := -1
	minDist := math.Inf(1)

	for i, center := range centroids {
		if d := SquaredL2(vec, center); d < minDist {
			minDist = d
			best = i
		}
	}

	return best, minDist
}
