package kdtree

import (
	"math"
	"slices"
)

// Insert adds a copy of point to the tree and returns the ID assigned to it.
//
// The point descends left while point[d] <= node[d] on each node's axis d and
// is attached at the first empty child slot. Duplicates are permitted. No
// rebalancing is performed.
func (t *Tree) Insert(point []float32) (uint32, error) {
	if err := t.checkPoint(point); err != nil {
		return 0, err
	}
	if !t.hasCapacity() || t.nextID == math.MaxUint32 {
		return 0, ErrCapacityExceeded
	}

	id := t.nextID
	p := slices.Clone(point)

	if t.root == nilIdx {
		t.root = t.alloc(p, id, 0, nilIdx)
	} else {
		cur := t.root
		for {
			n := &t.nodes[cur]
			left := p[n.axis] <= n.point[n.axis]
			next := n.right
			if left {
				next = n.left
			}
			if next == nilIdx {
				idx := t.alloc(p, id, t.nextAxis(n.axis), cur)
				t.link(cur, idx, !left)
				break
			}
			cur = next
		}
	}

	t.nextID++
	t.count++
	return id, nil
}
