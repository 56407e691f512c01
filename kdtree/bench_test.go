package kdtree

import (
	"fmt"
	"testing"

	"github.com/hupe1980/kdgo/testutil"
)

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			points := testutil.NewRNG(1).UniformPoints(n, 3)
			tree := newTree(b, 3)

			b.ResetTimer()
			for b.Loop() {
				if err := tree.Build(points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := testutil.NewRNG(2)
	points := rng.UniformPoints(100_000, 3)
	tree := newTree(b, 3)

	b.ResetTimer()
	i := 0
	for b.Loop() {
		if _, err := tree.Insert(points[i%len(points)]); err != nil {
			b.Fatal(err)
		}
		i++
	}
}

func BenchmarkNearest(b *testing.B) {
	for _, dim := range []int{2, 3, 8} {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			rng := testutil.NewRNG(3)
			tree := newTree(b, dim)
			if err := tree.Build(rng.UniformPoints(100_000, dim)); err != nil {
				b.Fatal(err)
			}
			queries := rng.UniformPoints(1024, dim)

			b.ResetTimer()
			i := 0
			for b.Loop() {
				if _, err := tree.Nearest(queries[i%len(queries)], nil); err != nil {
					b.Fatal(err)
				}
				i++
			}
		})
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	rng := testutil.NewRNG(4)
	points := rng.UniformPoints(50_000, 3)
	tree := newTree(b, 3)
	if err := tree.Build(points); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	i := 0
	for b.Loop() {
		p := points[i%len(points)]
		if _, err := tree.Remove(p); err != nil {
			b.Fatal(err)
		}
		if _, err := tree.Insert(p); err != nil {
			b.Fatal(err)
		}
		i++
	}
}
