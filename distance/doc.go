// Package distance provides the Euclidean geometry used by the k-d tree.
//
// All functions operate on []float32 coordinates and assume both inputs
// have the same length (the caller's responsibility).
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b) // ordering-equivalent to L2, no sqrt
//	d := distance.L2(a, b)
//	same := distance.Equal(a, b)
package distance
