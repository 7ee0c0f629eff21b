package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocluster/kmeans"
	"github.com/gocluster/kmeans/testutil"
)

func TestElbowCurve(t *testing.T) {
	rng := testutil.NewRNG(5)
	points, _ := rng.Blobs([][]float64{{0, 0}, {20, 0}, {0, 20}}, 20, 1.0)

	curve, err := ElbowCurve(points, 4, kmeans.InitKMeansPlusPlus, kmeans.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, curve, 4)

	for i, p := range curve {
		assert.Equal(t, i+1, p.K)
		assert.GreaterOrEqual(t, p.Inertia, 0.0)
	}

	// Matching the true cluster count captures far more structure than
	// the global scatter.
	assert.Less(t, curve[2].Inertia, curve[0].Inertia)
}

func TestElbowCurve_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(13)
	points := rng.UniformVectors(40, 2)

	first, err := ElbowCurve(points, 3, kmeans.InitRandom, kmeans.WithSeed(2))
	require.NoError(t, err)
	second, err := ElbowCurve(points, 3, kmeans.InitRandom, kmeans.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestElbowCurve_Errors(t *testing.T) {
	t.Run("InvalidMaxK", func(t *testing.T) {
		_, err := ElbowCurve([][]float64{{1, 1}}, 0, kmeans.InitRandom)
		assert.ErrorIs(t, err, kmeans.ErrInvalidConfig)
	})

	t.Run("PropagatesFitError", func(t *testing.T) {
		// maxK exceeds the point count, so the k=3 fit must fail.
		points := [][]float64{{0, 0}, {1, 1}}
		_, err := ElbowCurve(points, 3, kmeans.InitKMeansPlusPlus, kmeans.WithSeed(1))
		assert.ErrorIs(t, err, kmeans.ErrInvalidConfig)
	})
}
