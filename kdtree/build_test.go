package kdtree

import (
	"math/bits"
	"slices"
	"testing"

	"github.com/hupe1980/kdgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		dim    int
		points func(rng *testutil.RNG) [][]float32
	}{
		{"Empty", 2, func(*testutil.RNG) [][]float32 { return nil }},
		{"Single", 3, func(*testutil.RNG) [][]float32 { return [][]float32{{1, 2, 3}} }},
		{"Two", 2, func(*testutil.RNG) [][]float32 { return [][]float32{{2, 0}, {1, 0}} }},
		{"Uniform1D", 1, func(rng *testutil.RNG) [][]float32 { return rng.UniformPoints(257, 1) }},
		{"Uniform3D", 3, func(rng *testutil.RNG) [][]float32 { return rng.UniformPoints(1000, 3) }},
		{"Grid2D", 2, func(rng *testutil.RNG) [][]float32 { return rng.GridPoints(500, 2, 5) }},
		{"AllEqual", 2, func(*testutil.RNG) [][]float32 {
			points := make([][]float32, 64)
			for i := range points {
				points[i] = []float32{7, 7}
			}
			return points
		}},
		{"Sorted", 4, func(*testutil.RNG) [][]float32 { return testutil.SortedPoints(300, 4) }},
		{"Clustered", 5, func(rng *testutil.RNG) [][]float32 { return rng.ClusteredPoints(400, 5, 4, 0.05) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.NewRNG(4711)
			points := tt.points(rng)
			input := clonePoints(points)

			tree := newTree(t, tt.dim)
			require.NoError(t, tree.Build(points))
			require.NoError(t, tree.Validate())

			assert.Equal(t, len(points), tree.Len())
			assert.Equal(t, bits.Len(uint(len(points))), tree.Height())
			assert.ElementsMatch(t, input, tree.Points())

			// The caller's slice is neither reordered nor aliased.
			assert.Equal(t, input, points)
			for id, p := range tree.All() {
				assert.Equal(t, input[id], p)
			}
		})
	}
}

func TestBuildReplacesContents(t *testing.T) {
	tree := newTree(t, 2)
	_, err := tree.Insert([]float32{100, 100})
	require.NoError(t, err)

	require.NoError(t, tree.Build(scenarioPoints))
	assert.Equal(t, 8, tree.Len())

	found, err := tree.Contains([]float32{100, 100})
	require.NoError(t, err)
	assert.False(t, found)

	// IDs continue after the built range.
	id, err := tree.Insert([]float32{0, 9})
	require.NoError(t, err)
	assert.Equal(t, uint32(8), id)

	require.NoError(t, tree.Build(nil))
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
}

func TestBuildRootIsUpperMedian(t *testing.T) {
	tree := newTree(t, 2)
	require.NoError(t, tree.Build(scenarioPoints))

	// Sorted by x the points are 1,2,3,4,5,6,8,9; index (0+7+1)/2 = 4 holds x=5.
	root := tree.nodes[tree.root]
	assert.Equal(t, []float32{5, 8}, root.point)
	assert.Equal(t, int32(0), root.axis)

	// Right range {6,1},{8,7},{9,0} splits on y at its median y=1.
	right := tree.nodes[root.right]
	assert.Equal(t, []float32{6, 1}, right.point)
	assert.Equal(t, int32(1), right.axis)
}

func TestSelectNth(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, n := range []int{1, 2, 3, 10, 101} {
		points := rng.GridPoints(n, 2, 6)
		sorted := make([]float32, n)
		for i, p := range points {
			sorted[i] = p[1]
		}
		slices.Sort(sorted)

		for k := range n {
			es := make([]entry, n)
			for i, p := range points {
				es[i] = entry{point: p, id: uint32(i)}
			}

			selectNth(es, 0, n-1, k, 1)

			require.Equal(t, sorted[k], es[k].point[1], "n=%d k=%d", n, k)
			for i := range k {
				assert.LessOrEqual(t, es[i].point[1], es[k].point[1])
			}
			for i := k + 1; i < n; i++ {
				assert.GreaterOrEqual(t, es[i].point[1], es[k].point[1])
			}
		}
	}
}

func clonePoints(points [][]float32) [][]float32 {
	if points == nil {
		return nil
	}
	out := make([][]float32, len(points))
	for i, p := range points {
		out[i] = slices.Clone(p)
	}
	return out
}
