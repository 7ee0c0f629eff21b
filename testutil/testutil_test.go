package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	r := NewRNG(7)
	first := r.UniformVectors(10, 3)

	r.Reset()
	second := r.UniformVectors(10, 3)

	assert.Equal(t, int64(7), r.Seed())
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, NewRNG(8).UniformVectors(10, 3))
}

func TestUniformVectors_Range(t *testing.T) {
	vectors := NewRNG(1).UniformVectors(20, 4)
	require.Len(t, vectors, 20)
	for _, v := range vectors {
		require.Len(t, v, 4)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestBlobs(t *testing.T) {
	centers := [][]float64{{0, 0}, {100, 100}}

	t.Run("CountsAndLabels", func(t *testing.T) {
		points, labels := NewRNG(2).Blobs(centers, 5, 1.0)
		require.Len(t, points, 10)
		require.Len(t, labels, 10)
		assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, labels)
	})

	t.Run("ZeroStddev", func(t *testing.T) {
		points, labels := NewRNG(3).Blobs(centers, 2, 0)
		for i, p := range points {
			assert.Equal(t, centers[labels[i]], p)
		}
	})
}
