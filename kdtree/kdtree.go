package kdtree

import (
	"math"

	"github.com/hupe1980/kdgo/internal/conv"
)

// Options contains configuration options for the k-d tree.
type Options struct {
	// Dimension is the fixed coordinate dimensionality k of the tree.
	// It must be >= 1 and is enforced for every operation that takes a point.
	Dimension int
}

// DefaultOptions contains the default configuration options for the k-d tree.
// Dimension has no usable default and must be set.
var DefaultOptions = Options{
	Dimension: 0,
}

// SearchResult represents a nearest neighbor search result.
type SearchResult struct {
	// ID is the identifier assigned to the point by Build or Insert.
	ID uint32

	// Point is a copy of the stored coordinate.
	Point []float32

	// Distance is the Euclidean distance between the query and Point.
	Distance float32
}

// Tree is a k-d tree over points of a fixed dimension.
type Tree struct {
	opts   Options
	dim    int
	nodes  []node
	free   []int32 // released arena slots, reused by Insert
	root   int32
	count  int
	nextID uint32
}

// New creates a new, empty k-d tree.
// Dimension is required and must be set at creation time.
func New(optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	// Axes are stored as int32.
	if _, err := conv.IntToInt32(opts.Dimension); err != nil || opts.Dimension < 1 {
		return nil, &ErrInvalidDimension{Dimension: opts.Dimension}
	}

	return &Tree{
		opts: opts,
		dim:  opts.Dimension,
		root: nilIdx,
	}, nil
}

func (*Tree) Name() string { return "KDTree" }

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.count }

// Dimension returns the dimensionality of the tree.
func (t *Tree) Dimension() int { return t.dim }

// Reset removes all points. IDs restart at zero.
func (t *Tree) Reset() {
	t.nodes = nil
	t.free = nil
	t.root = nilIdx
	t.count = 0
	t.nextID = 0
}

// checkPoint validates the length and components of p.
func (t *Tree) checkPoint(p []float32) error {
	if len(p) != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: len(p)}
	}
	for _, v := range p {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return ErrInvalidCoordinate
		}
	}
	return nil
}
