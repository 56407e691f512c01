// Package kdgo provides an embeddable k-d tree index for exact nearest
// neighbor search over low-dimensional float32 points.
//
// The index wraps a kdtree.Tree with a read-write lock, structured logging,
// metrics hooks, bitmap filtering and parallel batch search.
//
// # Quick Start
//
//	ctx := context.Background()
//	ix, _ := kdgo.New(2)
//	_ = ix.Build(ctx, [][]float32{{3, 2}, {5, 8}, {6, 1}, {4, 4}})
//
//	res, _ := ix.Nearest(ctx, []float32{4, 3})
//	fmt.Println(res.ID, res.Point, res.Distance) // 3 [4 4] 1
//
// # Building and Updating
//
// Build replaces the contents with a balanced tree; the point at index i
// receives ID i. Insert and Remove update the tree in place without
// rebalancing, so a long run of skewed inserts can make the tree deep.
// Rebuild restores balance.
//
//	id, _ := ix.Insert(ctx, []float32{7, 7})
//	removed, _ := ix.Remove(ctx, []float32{4, 4}) // false if absent
//	_ = ix.Rebuild(ctx)
//
// # Filtering
//
// Searches can be restricted to a set of IDs held in a Roaring bitmap:
//
//	allow := roaring.BitmapOf(0, 2, 5)
//	res, err := ix.Nearest(ctx, q, kdgo.WithFilter(allow))
//
// # Batch Search
//
// BatchNearest searches many targets concurrently under one read lock:
//
//	results, err := ix.BatchNearest(ctx, queries, kdgo.WithParallelism(8))
//
// # Observability
//
//	metrics := &kdgo.BasicMetricsCollector{}
//	ix, _ := kdgo.New(3,
//	    kdgo.WithLogger(kdgo.NewJSONLogger(slog.LevelDebug)),
//	    kdgo.WithMetricsCollector(metrics),
//	)
//
// # Concurrency
//
// All Index methods are safe for concurrent use. Writers (Build, Insert,
// Remove, Rebuild) are exclusive; readers run in parallel.
package kdgo
