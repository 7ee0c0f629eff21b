package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Pythagorean", []float64{0, 0}, []float64{3, 4}, 5},
		{"Identical", []float64{1, 2}, []float64{1, 2}, 0},
		{"Unit", []float64{0}, []float64{1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := L2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestNearest(t *testing.T) {
	centroids := [][]float64{
		{0, 0},
		{10, 10},
		{20, 20},
	}

	t.Run("Closest", func(t *testing.T) {
		idx, d := Nearest([]float64{1, 1}, centroids)
		assert.Equal(t, 0, idx)
		assert.InDelta(t, 2.0, d, 1e-12)

		idx, _ = Nearest([]float64{19, 19}, centroids)
		assert.Equal(t, 2, idx)
	})

	t.Run("TieLowestIndex", func(t *testing.T) {
		// Equidistant to centroids 0 and 1.
		idx, _ := Nearest([]float64{5, 5}, centroids)
		assert.Equal(t, 0, idx)
	})

	t.Run("Empty", func(t *testing.T) {
		idx, d := Nearest([]float64{1, 1}, nil)
		assert.Equal(t, -1, idx)
		assert.True(t, math.IsInf(d, 1))
	})
}
