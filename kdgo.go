package kdgo

import (
	"context"
	"iter"
	"runtime"
	"sync"
	"time"

	"github.com/hupe1980/kdgo/kdtree"
)

// Index is an embeddable k-d tree index over fixed-dimensional float32 points.
//
// It is safe for concurrent use: Build, Insert and Remove take an exclusive
// lock, every other method shares a read lock.
type Index struct {
	mu      sync.RWMutex
	tree    *kdtree.Tree
	metrics MetricsCollector
	logger  *Logger
	opts    options
}

// New creates an empty index for points of the given dimension.
func New(dimension int, optFns ...Option) (*Index, error) {
	opts := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.parallelism < 1 {
		opts.parallelism = runtime.GOMAXPROCS(0)
	}

	tree, err := kdtree.New(func(o *kdtree.Options) {
		o.Dimension = dimension
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &Index{
		tree:    tree,
		metrics: opts.metricsCollector,
		logger:  opts.logger.WithDimension(dimension),
		opts:    opts,
	}, nil
}

// Build replaces the contents of the index with a balanced tree over points.
// The point at index i receives ID i. On error the index is unchanged.
func (ix *Index) Build(ctx context.Context, points [][]float32) error {
	start := time.Now()

	ix.mu.Lock()
	err := translateError(ix.tree.Build(points))
	height := ix.tree.Height()
	ix.mu.Unlock()

	ix.metrics.RecordBuild(len(points), time.Since(start), err)
	ix.logger.LogBuild(ctx, len(points), height, err)
	return err
}

// Insert adds a point and returns its ID. Duplicate points are kept.
func (ix *Index) Insert(ctx context.Context, point []float32) (uint32, error) {
	start := time.Now()

	ix.mu.Lock()
	id, err := ix.tree.Insert(point)
	ix.mu.Unlock()

	err = translateError(err)
	ix.metrics.RecordInsert(time.Since(start), err)
	ix.logger.LogInsert(ctx, id, err)
	return id, err
}

// Remove deletes one point equal to point and reports whether one was found.
// Removing an absent point is not an error.
func (ix *Index) Remove(ctx context.Context, point []float32) (bool, error) {
	start := time.Now()

	ix.mu.Lock()
	removed, err := ix.tree.Remove(point)
	ix.mu.Unlock()

	err = translateError(err)
	ix.metrics.RecordRemove(removed, time.Since(start), err)
	ix.logger.LogRemove(ctx, removed, err)
	return removed, err
}

// Find returns the ID of a stored point equal to point.
func (ix *Index) Find(ctx context.Context, point []float32) (uint32, bool, error) {
	start := time.Now()

	ix.mu.RLock()
	id, found, err := ix.tree.Find(point)
	ix.mu.RUnlock()

	err = translateError(err)
	ix.metrics.RecordLookup(found, time.Since(start), err)
	ix.logger.LogLookup(ctx, found, err)
	return id, found, err
}

// Contains reports whether a point equal to point is stored.
func (ix *Index) Contains(ctx context.Context, point []float32) (bool, error) {
	_, found, err := ix.Find(ctx, point)
	return found, err
}

// Len returns the number of stored points.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Len()
}

// Dimension returns the dimensionality of the index.
func (ix *Index) Dimension() int {
	return ix.tree.Dimension()
}

// Stats returns statistics about the underlying tree.
func (ix *Index) Stats() kdtree.Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Stats()
}

// Validate checks the structural invariants of the underlying tree.
func (ix *Index) Validate() error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Validate()
}

// All returns an iterator over the stored points and their IDs.
// The read lock is held until iteration ends, so the loop body must not
// modify the index.
func (ix *Index) All() iter.Seq2[uint32, []float32] {
	return func(yield func(uint32, []float32) bool) {
		ix.mu.RLock()
		defer ix.mu.RUnlock()
		for id, p := range ix.tree.All() {
			if !yield(id, p) {
				return
			}
		}
	}
}

// Rebuild rebalances the index by rebuilding it from its current points.
// IDs are reassigned in iteration order.
func (ix *Index) Rebuild(ctx context.Context) error {
	start := time.Now()

	ix.mu.Lock()
	points := ix.tree.Points()
	err := translateError(ix.tree.Build(points))
	height := ix.tree.Height()
	ix.mu.Unlock()

	ix.metrics.RecordBuild(len(points), time.Since(start), err)
	ix.logger.LogBuild(ctx, len(points), height, err)
	return err
}
