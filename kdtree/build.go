package kdtree

import (
	"fmt"
	"slices"

	"github.com/hupe1980/kdgo/internal/conv"
)

// entry is a point waiting to be placed by Build.
type entry struct {
	point []float32
	id    uint32
}

// buildTask is a pending sub-range [lo, hi] whose subtree hangs below parent.
type buildTask struct {
	lo, hi int
	axis   int32
	parent int32
	right  bool
}

// Build replaces the contents of the tree with a balanced tree over points.
//
// The point at index i receives ID i, and later inserts continue from
// len(points). An empty slice leaves an empty tree. Every point is validated
// before anything changes; on error the tree is untouched. Points are copied.
func (t *Tree) Build(points [][]float32) error {
	n, err := conv.IntToInt32(len(points))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	for _, p := range points {
		if err := t.checkPoint(p); err != nil {
			return err
		}
	}

	entries := make([]entry, len(points))
	for i, p := range points {
		entries[i] = entry{point: slices.Clone(p), id: uint32(i)}
	}

	t.nodes = make([]node, 0, len(entries))
	t.free = nil
	t.root = nilIdx
	t.count = len(entries)
	t.nextID = uint32(n)

	stack := []buildTask{{lo: 0, hi: len(entries) - 1, axis: 0, parent: nilIdx}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.lo > task.hi {
			continue
		}

		// Upper median for even-length ranges.
		mid := (task.lo + task.hi + 1) / 2
		selectNth(entries, task.lo, task.hi, mid, int(task.axis))

		idx := t.alloc(entries[mid].point, entries[mid].id, task.axis, task.parent)
		t.link(task.parent, idx, task.right)

		next := t.nextAxis(task.axis)
		stack = append(stack,
			buildTask{lo: mid + 1, hi: task.hi, axis: next, parent: idx, right: true},
			buildTask{lo: task.lo, hi: mid - 1, axis: next, parent: idx},
		)
	}

	return nil
}

// selectNth rearranges es[lo:hi+1] so that es[k] holds the element of rank k
// by coordinate axis, with no greater element before it and no smaller
// element after it.
func selectNth(es []entry, lo, hi, k, axis int) {
	for lo < hi {
		p := partition(es, lo, hi, axis)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition is a Lomuto partition of es[lo:hi+1] around the median of the
// first, middle and last elements. It returns the pivot's final index.
func partition(es []entry, lo, hi, axis int) int {
	mid := lo + (hi-lo)/2
	if es[mid].point[axis] < es[lo].point[axis] {
		es[mid], es[lo] = es[lo], es[mid]
	}
	if es[hi].point[axis] < es[lo].point[axis] {
		es[hi], es[lo] = es[lo], es[hi]
	}
	if es[mid].point[axis] < es[hi].point[axis] {
		es[mid], es[hi] = es[hi], es[mid]
	}

	pivot := es[hi].point[axis]
	i := lo
	for j := lo; j < hi; j++ {
		if es[j].point[axis] < pivot {
			es[i], es[j] = es[j], es[i]
			i++
		}
	}
	es[i], es[hi] = es[hi], es[i]
	return i
}
