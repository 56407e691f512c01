// Package kdtree provides an in-memory k-d tree over fixed-dimensional
// float32 points.
//
// The tree supports balanced bulk construction, incremental insertion,
// deletion, exact lookup and nearest neighbor search under the Euclidean
// metric.
//
// # Structure
//
// Nodes live in an arena and reference each other by int32 index. Each node
// stores its coordinate, the ID assigned to the point, its splitting axis and
// links to its children and parent. The parent link is a plain back index;
// it is only used to detach a removed leaf.
//
// For a node with axis d, every point in its left subtree has [d] less than
// or equal to the node's [d], and every point in its right subtree has [d]
// greater than or equal to it. The root splits on axis 0 and each child
// splits on (parent axis + 1) mod k.
//
// # Building
//
// Build places the upper median of each range (by quickselect) at the root of
// its subtree, which gives a tree of expected height O(log n). Insert never
// rebalances; rebuild to rebalance.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Readers (Find, Contains, Nearest,
// NearestNeighbor, All, Validate, Stats) may run concurrently with each
// other but not with Build, Insert, Remove or Reset. The kdgo package wraps a
// Tree with a read-write lock.
//
// # Usage
//
//	t, _ := kdtree.New(func(o *kdtree.Options) { o.Dimension = 2 })
//	_ = t.Build([][]float32{{3, 2}, {5, 8}, {6, 1}, {4, 4}})
//	nn, _ := t.NearestNeighbor([]float32{4, 3}) // [4 4]
package kdtree
