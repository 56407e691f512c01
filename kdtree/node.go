package kdtree

import "math"

// nilIdx marks an empty link.
const nilIdx int32 = -1

// maxNodes is the number of slots addressable by an int32 index.
const maxNodes = math.MaxInt32

// node is an arena slot. Children are owned through the arena; parent is a
// back index and never drives release.
type node struct {
	point  []float32
	id     uint32
	axis   int32
	left   int32
	right  int32
	parent int32
}

// alloc stores a new node and returns its index. It may grow t.nodes, so
// callers must not hold *node pointers across the call.
func (t *Tree) alloc(point []float32, id uint32, axis int32, parent int32) int32 {
	n := node{
		point:  point,
		id:     id,
		axis:   axis,
		left:   nilIdx,
		right:  nilIdx,
		parent: parent,
	}
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[idx] = n
		return idx
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// release clears a detached slot and puts it on the free list.
func (t *Tree) release(idx int32) {
	t.nodes[idx] = node{left: nilIdx, right: nilIdx, parent: nilIdx}
	t.free = append(t.free, idx)
}

// link attaches child under parent, or makes it the root.
func (t *Tree) link(parent, child int32, right bool) {
	switch {
	case parent == nilIdx:
		t.root = child
	case right:
		t.nodes[parent].right = child
	default:
		t.nodes[parent].left = child
	}
}

func (t *Tree) nextAxis(axis int32) int32 {
	return (axis + 1) % int32(t.dim)
}

func (t *Tree) hasCapacity() bool {
	return len(t.free) > 0 || len(t.nodes) < maxNodes
}
