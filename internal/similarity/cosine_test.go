package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalAndOrthogonal(t *testing.T) {
	m := EntityMatrix{
		IDs: []string{"A", "B", "C"},
		Features: [][]float64{
			{1, 1, 0},
			{1, 1, 0},
			{0, 0, 1},
		},
	}

	sim, err := Cosine(m)
	require.NoError(t, err)

	assert.Equal(t, 3, sim.Len())
	assert.InDelta(t, 1.0, sim.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, sim.At(0, 2), 1e-12)
	assert.InDelta(t, 0.0, sim.At(1, 2), 1e-12)
}

func TestCosine_SymmetricUnitDiagonal(t *testing.T) {
	m := EntityMatrix{
		IDs: []string{"a", "b", "c", "d"},
		Features: [][]float64{
			{1, -1, 0, 1},
			{0.5, 2, -1, 0},
			{-1, -1, 1, 1},
			{3, 0, 0, 1},
		},
	}

	sim, err := Cosine(m)
	require.NoError(t, err)

	for i := 0; i < sim.Len(); i++ {
		assert.Equal(t, 1.0, sim.At(i, i))
		for j := 0; j < sim.Len(); j++ {
			assert.Equal(t, sim.At(i, j), sim.At(j, i))
			assert.LessOrEqual(t, math.Abs(sim.At(i, j)), 1.0)
		}
	}
}

func TestCosine_ScaleInvariant(t *testing.T) {
	m := EntityMatrix{
		IDs:      []string{"x", "y"},
		Features: [][]float64{{1, 2, 3}, {10, 20, 30}},
	}
	sim, err := Cosine(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim.At(0, 1), 1e-12)
}

func TestCosine_OppositeVectors(t *testing.T) {
	m := EntityMatrix{
		IDs:      []string{"x", "y"},
		Features: [][]float64{{1, -1}, {-1, 1}},
	}
	sim, err := Cosine(m)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim.At(0, 1), 1e-12)
}

func TestCosine_ZeroRow(t *testing.T) {
	m := EntityMatrix{
		IDs:      []string{"voter", "absent"},
		Features: [][]float64{{1, 0, 1}, {0, 0, 0}},
	}

	sim, err := Cosine(m)
	require.NoError(t, err)

	assert.Equal(t, 0.0, sim.At(0, 1))
	assert.Equal(t, 1.0, sim.At(1, 1))
	assert.False(t, math.IsNaN(sim.At(1, 0)))
}

func TestCosine_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		m    EntityMatrix
		row  int
	}{
		{"single row", EntityMatrix{IDs: []string{"a"}, Features: [][]float64{{1}}}, -1},
		{"empty", EntityMatrix{}, -1},
		{"no features", EntityMatrix{IDs: []string{"a", "b"}, Features: [][]float64{{}, {}}}, 0},
		{"ragged", EntityMatrix{IDs: []string{"a", "b"}, Features: [][]float64{{1, 2}, {1}}}, 1},
		{"id count", EntityMatrix{IDs: []string{"a"}, Features: [][]float64{{1}, {2}}}, -1},
		{"nan", EntityMatrix{IDs: []string{"a", "b"}, Features: [][]float64{{1}, {math.NaN()}}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cosine(tt.m)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.row, invalid.Row)
			assert.Contains(t, err.Error(), "invalid entity matrix")
		})
	}
}

func TestNewMatrix(t *testing.T) {
	_, err := NewMatrix([]string{"a", "b"}, [][]float64{{1, 0.5}, {0.4, 1}})
	assert.Error(t, err, "asymmetric input must be rejected")

	_, err = NewMatrix([]string{"a", "b"}, [][]float64{{1, 0.5}})
	assert.Error(t, err)

	m, err := NewMatrix([]string{"a", "b"}, [][]float64{{1, 0.5}, {0.5, 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.IDs())
	assert.Equal(t, 0.5, m.At(1, 0))
}
