package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree)
	}{
		{"PartitionOnAxis", func(tree *Tree) {
			// The root's left subtree holds x in [1,4]; moving the root below that breaks it.
			tree.nodes[tree.root].point[0] = 0
		}},
		{"PartitionAgainstAncestor", func(tree *Tree) {
			// A right-subtree leaf may not move left of the root's x.
			right := tree.nodes[tree.root].right
			leaf := tree.nodes[right].left
			tree.nodes[leaf].point[0] = 1
		}},
		{"AxisRotation", func(tree *Tree) {
			tree.nodes[tree.nodes[tree.root].left].axis = 0
		}},
		{"RootAxis", func(tree *Tree) {
			tree.nodes[tree.root].axis = 1
		}},
		{"ParentBackReference", func(tree *Tree) {
			left := tree.nodes[tree.root].left
			tree.nodes[left].parent = left
		}},
		{"Count", func(tree *Tree) {
			tree.count--
		}},
		{"Dimension", func(tree *Tree) {
			tree.nodes[tree.nodes[tree.root].right].point = []float32{6}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newTree(t, 2)
			require.NoError(t, tree.Build(scenarioPoints))
			require.NoError(t, tree.Validate())

			tt.corrupt(tree)
			assert.ErrorIs(t, tree.Validate(), ErrInvariantViolation)
		})
	}

	t.Run("EmptyWithCount", func(t *testing.T) {
		tree := newTree(t, 2)
		tree.count = 1
		assert.ErrorIs(t, tree.Validate(), ErrInvariantViolation)
	})
}
