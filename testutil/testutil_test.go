package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.LessOrEqual(t, v[0][0], float32(1.0))
	assert.GreaterOrEqual(t, v[1][0], float32(0.0))

	// Points share a backing array but must not alias on append.
	v[0] = append(v[0], 42)
	assert.NotEqual(t, float32(42), v[1][0])
}

func TestUniformRangePoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRangePoints(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.LessOrEqual(t, v[0][0], float32(1.0))
	assert.GreaterOrEqual(t, v[1][0], float32(-1.0))
}

func TestGridPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.GridPoints(200, 3, 4)

	require.Len(t, v, 200)
	for _, p := range v {
		require.Len(t, p, 3)
		for _, c := range p {
			assert.Contains(t, []float32{0, 1, 2, 3}, c)
		}
	}
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ClusteredPoints(100, 4, 5, 0.1)

	assert.Equal(t, 100, len(v))
	assert.Equal(t, 4, len(v[0]))
}

func TestSortedPoints(t *testing.T) {
	v := SortedPoints(3, 2)

	assert.Equal(t, [][]float32{{0, 0}, {1, 1}, {2, 2}}, v)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformPoints(1, 10)

	rng.Reset()
	v2 := rng.UniformPoints(1, 10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestExactNearest(t *testing.T) {
	points := [][]float32{{3, 2}, {5, 8}, {4, 4}, {2, 2}}

	idx, d2 := ExactNearest([]float32{4, 3}, points)
	assert.Equal(t, 2, idx)
	assert.Equal(t, float32(1), d2)

	// (3,2) and (5,4) are both at squared distance 2; first wins.
	idx, d2 = ExactNearest([]float32{4, 3}, [][]float32{{3, 2}, {5, 4}})
	assert.Equal(t, 0, idx)
	assert.Equal(t, float32(2), d2)

	idx, _ = ExactNearest([]float32{0, 0}, nil)
	assert.Equal(t, -1, idx)
}

func TestExactNearestFiltered(t *testing.T) {
	points := [][]float32{{3, 2}, {5, 8}, {4, 4}, {2, 2}}

	idx, d2 := ExactNearestFiltered([]float32{4, 3}, points, func(i int) bool { return i != 2 })
	assert.Equal(t, 0, idx)
	assert.Equal(t, float32(2), d2)

	idx, _ = ExactNearestFiltered([]float32{4, 3}, points, func(int) bool { return false })
	assert.Equal(t, -1, idx)
}
