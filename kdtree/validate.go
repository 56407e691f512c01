package kdtree

import (
	"math"
	"slices"
)

// validateFrame carries the per-axis bounds every point below idx must obey.
type validateFrame struct {
	idx          int32
	lower, upper []float32
}

// Validate checks the structure of the tree: the axis-partition invariant
// against every ancestor, axis rotation, parent back references and the
// point count. It returns an error wrapping ErrInvariantViolation.
func (t *Tree) Validate() error {
	if t.root == nilIdx {
		if t.count != 0 {
			return violation("empty tree reports %d points", t.count)
		}
		return nil
	}

	root := &t.nodes[t.root]
	if root.parent != nilIdx {
		return violation("root has parent %d", root.parent)
	}
	if root.axis != 0 {
		return violation("root splits on axis %d", root.axis)
	}

	lower := make([]float32, t.dim)
	upper := make([]float32, t.dim)
	for i := range t.dim {
		lower[i] = float32(math.Inf(-1))
		upper[i] = float32(math.Inf(1))
	}

	seen := 0
	stack := []validateFrame{{idx: t.root, lower: lower, upper: upper}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seen++
		if seen > t.count {
			return violation("more than %d reachable nodes", t.count)
		}

		n := &t.nodes[f.idx]
		if len(n.point) != t.dim {
			return violation("point %d has %d components", n.id, len(n.point))
		}
		for i, v := range n.point {
			if v < f.lower[i] || v > f.upper[i] {
				return violation("point %d component %d = %v outside [%v, %v]", n.id, i, v, f.lower[i], f.upper[i])
			}
		}

		axis := n.axis
		split := n.point[axis]
		for _, right := range []bool{false, true} {
			child := n.left
			if right {
				child = n.right
			}
			if child == nilIdx {
				continue
			}

			c := &t.nodes[child]
			if c.parent != f.idx {
				return violation("point %d has parent %d, want %d", c.id, c.parent, f.idx)
			}
			if want := t.nextAxis(axis); c.axis != want {
				return violation("point %d splits on axis %d, want %d", c.id, c.axis, want)
			}

			next := validateFrame{idx: child, lower: f.lower, upper: f.upper}
			if right {
				next.lower = slices.Clone(f.lower)
				next.lower[axis] = max(next.lower[axis], split)
			} else {
				next.upper = slices.Clone(f.upper)
				next.upper[axis] = min(next.upper[axis], split)
			}
			stack = append(stack, next)
		}
	}

	if seen != t.count {
		return violation("%d reachable nodes, count is %d", seen, t.count)
	}
	return nil
}
