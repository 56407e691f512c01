package kdtree

// Remove deletes one stored point equal to point. It reports whether a point
// was removed; removing an absent point is a no-op.
func (t *Tree) Remove(point []float32) (bool, error) {
	if err := t.checkPoint(point); err != nil {
		return false, err
	}

	idx := t.locate(point)
	if idx == nilIdx {
		return false, nil
	}

	t.removeNode(idx)
	t.count--
	return true, nil
}

// removeNode deletes the node at idx.
//
// A node with a right subtree takes over the point that is minimal on its
// axis within that subtree. A node with only a left subtree does the same
// with the left subtree, which then becomes its right subtree. The slot the
// replacement came from is deleted next, until a leaf is reached and
// detached. Overwriting the point here is the only place a node's coordinate
// changes without the node moving.
func (t *Tree) removeNode(idx int32) {
	for {
		n := &t.nodes[idx]

		var sub int32
		switch {
		case n.right != nilIdx:
			sub = n.right
		case n.left != nilIdx:
			sub = n.left
			n.right, n.left = n.left, nilIdx
		default:
			t.detach(idx)
			return
		}

		m := t.findMin(sub, n.axis)
		n.point, n.id = t.nodes[m].point, t.nodes[m].id
		idx = m
	}
}

// detach unlinks the leaf at idx from its parent and releases it.
func (t *Tree) detach(idx int32) {
	parent := t.nodes[idx].parent
	switch {
	case parent == nilIdx:
		t.root = nilIdx
	case t.nodes[parent].left == idx:
		t.nodes[parent].left = nilIdx
	default:
		t.nodes[parent].right = nilIdx
	}
	t.release(idx)
}

// findMin returns the node in the subtree at root whose coordinate on axis is
// smallest. Nodes splitting on axis only need their left side searched;
// others need both. The first minimum in pre-order wins.
func (t *Tree) findMin(root int32, axis int32) int32 {
	best := root
	stack := []int32{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[cur]
		if n.point[axis] < t.nodes[best].point[axis] {
			best = cur
		}
		if n.axis != axis && n.right != nilIdx {
			stack = append(stack, n.right)
		}
		if n.left != nilIdx {
			stack = append(stack, n.left)
		}
	}
	return best
}
