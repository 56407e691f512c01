package kdtree

import "fmt"

// Stats describes the shape of a tree.
type Stats struct {
	Dimension int
	Len       int
	Height    int
	Capacity  int // allocated arena slots
	FreeSlots int
}

func (s Stats) String() string {
	return fmt.Sprintf("dimension=%d len=%d height=%d capacity=%d free=%d",
		s.Dimension, s.Len, s.Height, s.Capacity, s.FreeSlots)
}

// Stats returns statistics about the tree.
func (t *Tree) Stats() Stats {
	return Stats{
		Dimension: t.dim,
		Len:       t.count,
		Height:    t.Height(),
		Capacity:  len(t.nodes),
		FreeSlots: len(t.free),
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nilIdx {
		return 0
	}

	type item struct {
		idx   int32
		depth int
	}

	height := 0
	stack := []item{{idx: t.root, depth: 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		height = max(height, it.depth)
		n := &t.nodes[it.idx]
		if n.left != nilIdx {
			stack = append(stack, item{idx: n.left, depth: it.depth + 1})
		}
		if n.right != nilIdx {
			stack = append(stack, item{idx: n.right, depth: it.depth + 1})
		}
	}
	return height
}
