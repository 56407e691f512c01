package distance

import "math"

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
//
// Terms are accumulated left to right so results are bit-for-bit
// reproducible; exact-tie behavior of nearest neighbor search depends on it.
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
func L2(a, b []float32) float32 {
	return Sqrt(SquaredL2(a, b))
}

// Sqrt converts a squared distance into a distance.
func Sqrt(d2 float32) float32 {
	return float32(math.Sqrt(float64(d2)))
}

// AxisSquared returns the squared distance from a to the hyperplane
// orthogonal to axis that passes through b.
func AxisSquared(a, b []float32, axis int) float32 {
	d := a[axis] - b[axis]
	return d * d
}

// Equal reports whether a and b have the same length and identical components.
func Equal(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
