package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{-2}, []float32{3}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestL2(t *testing.T) {
	assert.InDelta(t, float32(5), L2([]float32{0, 0}, []float32{3, 4}), 1e-6)
	assert.InDelta(t, float32(math.Sqrt2), L2([]float32{4, 3}, []float32{3, 2}), 1e-6)
	assert.Equal(t, float32(0), L2([]float32{7}, []float32{7}))
}

func TestAxisSquared(t *testing.T) {
	a := []float32{4, 3}
	b := []float32{6, 1}

	assert.Equal(t, float32(4), AxisSquared(a, b, 0))
	assert.Equal(t, float32(4), AxisSquared(a, b, 1))
	assert.Equal(t, float32(0), AxisSquared(a, a, 1))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want bool
	}{
		{"Same", []float32{1, 2}, []float32{1, 2}, true},
		{"DifferentComponent", []float32{1, 2}, []float32{1, 3}, false},
		{"DifferentLength", []float32{1, 2}, []float32{1, 2, 3}, false},
		{"Empty", []float32{}, []float32{}, true},
		{"NegativeZero", []float32{0}, []float32{float32(math.Copysign(0, -1))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func BenchmarkSquaredL2(b *testing.B) {
	x := make([]float32, 16)
	y := make([]float32, 16)
	for i := range x {
		x[i] = float32(i)
		y[i] = float32(2 * i)
	}

	b.ResetTimer()
	for b.Loop() {
		_ = SquaredL2(x, y)
	}
}
