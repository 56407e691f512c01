package kdtree

import (
	"slices"

	"github.com/hupe1980/kdgo/distance"
)

// Find looks up a stored point equal to point and returns its ID.
// A missing point is reported through the boolean, not as an error.
func (t *Tree) Find(point []float32) (uint32, bool, error) {
	if err := t.checkPoint(point); err != nil {
		return 0, false, err
	}

	idx := t.locate(point)
	if idx == nilIdx {
		return 0, false, nil
	}
	return t.nodes[idx].id, true, nil
}

// Contains reports whether a point equal to point is stored in the tree.
func (t *Tree) Contains(point []float32) (bool, error) {
	_, ok, err := t.Find(point)
	return ok, err
}

// locate returns the index of a node holding point, or nilIdx.
//
// Smaller values descend left and larger ones right. Build and Remove can
// leave values equal to a node's split value in either subtree, so on a tie
// the left side is searched first and the right side afterwards.
func (t *Tree) locate(point []float32) int32 {
	if t.root == nilIdx {
		return nilIdx
	}

	pending := []int32{t.root}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for cur != nilIdx {
			n := &t.nodes[cur]
			if distance.Equal(point, n.point) {
				return cur
			}

			v, split := point[n.axis], n.point[n.axis]
			switch {
			case v < split:
				cur = n.left
			case v > split:
				cur = n.right
			default:
				if n.right != nilIdx {
					pending = append(pending, n.right)
				}
				cur = n.left
			}
		}
	}
	return nilIdx
}

// NearestNeighbor returns a copy of the stored point closest to target.
func (t *Tree) NearestNeighbor(target []float32) ([]float32, error) {
	res, err := t.Nearest(target, nil)
	if err != nil {
		return nil, err
	}
	return res.Point, nil
}

// Nearest returns the stored point closest to target among those accepted by
// filter. A nil filter accepts every point.
//
// On an exact distance tie the point found first is kept, so results are
// deterministic for a given tree shape.
func (t *Tree) Nearest(target []float32, filter func(id uint32) bool) (SearchResult, error) {
	if err := t.checkPoint(target); err != nil {
		return SearchResult{}, err
	}
	if t.count == 0 {
		return SearchResult{}, ErrEmptyTree
	}

	best, d2 := t.nearest(target, filter)
	if best == nilIdx {
		return SearchResult{}, ErrNoMatch
	}

	n := &t.nodes[best]
	return SearchResult{
		ID:       n.id,
		Point:    slices.Clone(n.point),
		Distance: distance.Sqrt(d2),
	}, nil
}

// nnFrame is a node on the nearest neighbor work stack. A frame is visited
// twice: first to descend toward target, then, once the near subtree is
// finished, to score the node and decide whether to cross its hyperplane.
type nnFrame struct {
	idx       int32
	unwinding bool
}

// nearest runs the branch-and-bound search and returns the best node index
// (nilIdx if the filter rejected everything) and its squared distance.
//
// The near side is the one Insert would take for target. The far side of a
// node is searched only if the squared distance from target to the node's
// splitting hyperplane is strictly less than the best squared distance so far.
func (t *Tree) nearest(target []float32, filter func(id uint32) bool) (int32, float32) {
	best := nilIdx
	var bestDist float32

	stack := make([]nnFrame, 0, 64)
	stack = append(stack, nnFrame{idx: t.root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.idx]
		nearLeft := target[n.axis] <= n.point[n.axis]

		if !f.unwinding {
			stack = append(stack, nnFrame{idx: f.idx, unwinding: true})
			near := n.right
			if nearLeft {
				near = n.left
			}
			if near != nilIdx {
				stack = append(stack, nnFrame{idx: near})
			}
			continue
		}

		if filter == nil || filter(n.id) {
			if d := distance.SquaredL2(target, n.point); best == nilIdx || d < bestDist {
				best, bestDist = f.idx, d
			}
		}

		far := n.left
		if nearLeft {
			far = n.right
		}
		if far != nilIdx && (best == nilIdx || distance.AxisSquared(target, n.point, int(n.axis)) < bestDist) {
			stack = append(stack, nnFrame{idx: far})
		}
	}

	return best, bestDist
}
