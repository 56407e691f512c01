// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets (including
// tie-heavy and adversarially ordered ones) and for computing the exact
// nearest neighbor by exhaustive scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 3)     // uniform [0, 1)
//	grid := rng.GridPoints(1000, 2, 8)    // integer coordinates, many ties
//	sorted := testutil.SortedPoints(1000, 2)
//
// # Exact Search (Ground Truth)
//
//	idx, d2 := testutil.ExactNearest(target, pts)
package testutil
