package kdtree

import (
	"iter"
	"slices"
)

// All returns an iterator over the stored points in order (left subtree,
// node, right subtree), yielding each point's ID and a copy of its
// coordinate. The tree must not be modified during iteration.
func (t *Tree) All() iter.Seq2[uint32, []float32] {
	return func(yield func(uint32, []float32) bool) {
		stack := make([]int32, 0, 32)
		cur := t.root
		for cur != nilIdx || len(stack) > 0 {
			for cur != nilIdx {
				stack = append(stack, cur)
				cur = t.nodes[cur].left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := &t.nodes[cur]
			if !yield(n.id, slices.Clone(n.point)) {
				return
			}
			cur = n.right
		}
	}
}

// Points returns copies of all stored points in iteration order.
func (t *Tree) Points() [][]float32 {
	points := make([][]float32, 0, t.count)
	for _, p := range t.All() {
		points = append(points, p)
	}
	return points
}
