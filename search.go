package kdgo

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdgo/kdtree"
	"golang.org/x/sync/errgroup"
)

// SearchResult represents a nearest neighbor search result.
type SearchResult struct {
	kdtree.SearchResult
}

// FilterFunc is a function type used for filtering search results.
type FilterFunc func(id uint32) bool

// SearchOptions contains options for nearest neighbor search.
type SearchOptions struct {
	// Filter restricts candidates to the IDs present in the bitmap.
	// The bitmap must not be modified while a search is running.
	Filter *roaring.Bitmap

	// FilterFunc is a function used to filter search results.
	// When both filters are set a point must pass both.
	FilterFunc FilterFunc

	// Parallelism bounds the number of targets BatchNearest searches at once.
	// Default: 0 (use the index default)
	Parallelism int
}

// WithFilter restricts a search to the IDs in bitmap.
func WithFilter(bitmap *roaring.Bitmap) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Filter = bitmap
	}
}

// WithParallelism bounds the number of concurrent searches in BatchNearest.
func WithParallelism(n int) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Parallelism = n
	}
}

func (o *SearchOptions) filter() func(id uint32) bool {
	switch {
	case o.Filter != nil && o.FilterFunc != nil:
		return func(id uint32) bool { return o.Filter.Contains(id) && o.FilterFunc(id) }
	case o.Filter != nil:
		return o.Filter.Contains
	case o.FilterFunc != nil:
		return o.FilterFunc
	default:
		return nil
	}
}

// Nearest returns the stored point closest to target under the Euclidean metric.
//
// On an exact distance tie the point found first during the search is kept.
// It returns ErrEmptyIndex on an empty index and ErrNoMatch when a filter
// rejects every point.
func (ix *Index) Nearest(ctx context.Context, target []float32, optFns ...func(o *SearchOptions)) (SearchResult, error) {
	start := time.Now()
	opts := SearchOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	ix.mu.RLock()
	res, err := ix.tree.Nearest(target, opts.filter())
	ix.mu.RUnlock()

	err = translateError(err)
	ix.metrics.RecordSearch(time.Since(start), err)
	ix.logger.LogSearch(ctx, res.ID, res.Distance, err)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{SearchResult: res}, nil
}

// NearestNeighbor returns a copy of the stored point closest to target.
func (ix *Index) NearestNeighbor(ctx context.Context, target []float32) ([]float32, error) {
	res, err := ix.Nearest(ctx, target)
	if err != nil {
		return nil, err
	}
	return res.Point, nil
}

// BatchNearest runs Nearest for every target concurrently and returns the
// results in target order.
//
// Writers are blocked for the duration of the call. The first failing target
// cancels the remaining ones and its error is returned. A canceled ctx stops
// targets that have not started yet; a search in progress runs to completion.
func (ix *Index) BatchNearest(ctx context.Context, targets [][]float32, optFns ...func(o *SearchOptions)) ([]SearchResult, error) {
	start := time.Now()
	opts := SearchOptions{
		Parallelism: ix.opts.parallelism,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Parallelism < 1 {
		opts.Parallelism = ix.opts.parallelism
	}

	results, err := ix.batchNearest(ctx, targets, opts)
	ix.metrics.RecordBatchSearch(len(targets), time.Since(start), err)
	ix.logger.LogBatchSearch(ctx, len(targets), err)
	return results, err
}

func (ix *Index) batchNearest(ctx context.Context, targets [][]float32, opts SearchOptions) ([]SearchResult, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(targets) == 0 {
		return []SearchResult{}, nil
	}
	if ix.tree.Len() == 0 {
		return nil, translateError(kdtree.ErrEmptyTree)
	}

	filter := opts.filter()
	results := make([]SearchResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ix.tree.Nearest(target, filter)
			if err != nil {
				return fmt.Errorf("target %d: %w", i, translateError(err))
			}
			results[i] = SearchResult{SearchResult: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
