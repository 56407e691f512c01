package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kdgo/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	points := make([][]float32, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float32()
		}
		points[i] = p
	}

	return points
}

// UniformRangePoints generates random points with coordinates in range [-1, 1).
func (r *RNG) UniformRangePoints(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	points := make([][]float32, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float32()*2 - 1
		}
		points[i] = p
	}

	return points
}

// GridPoints generates points with integer coordinates in [0, span).
// A small span produces many equal values per axis and many exact
// duplicate points, which exercises tie handling.
func (r *RNG) GridPoints(num, dimensions, span int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float32, num)
	for i := range num {
		p := make([]float32, dimensions)
		for j := range p {
			p[j] = float32(r.rand.Intn(span))
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points clustered around random centroids in [0, 1).
// Useful for testing pruning on non-uniform data.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float32) [][]float32 {
	centroids := r.UniformPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	points := make([][]float32, num)

	for i := range num {
		centroid := centroids[i%clusters]
		p := data[i*dim : (i+1)*dim : (i+1)*dim]

		for j := range dim {
			p[j] = centroid[j] + float32(r.rand.NormFloat64())*spread
		}
		points[i] = p
	}

	return points
}

// Shuffle randomizes the order of points in place.
func (r *RNG) Shuffle(points [][]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// SortedPoints returns the diagonal points (i, i, ..., i) in ascending order.
// Inserted one by one they degrade a k-d tree into a list.
func SortedPoints(num, dimensions int) [][]float32 {
	points := make([][]float32, num)
	for i := range num {
		p := make([]float32, dimensions)
		for j := range p {
			p[j] = float32(i)
		}
		points[i] = p
	}
	return points
}

// ExactNearest returns the index of the point closest to target and its
// squared distance, by exhaustive scan. The first minimum wins on ties.
// It returns -1 when points is empty.
func ExactNearest(target []float32, points [][]float32) (int, float32) {
	best := -1
	bestDist := float32(math.Inf(1))
	for i, p := range points {
		if d := distance.SquaredL2(target, p); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// ExactNearestFiltered is ExactNearest restricted to indexes accepted by keep.
func ExactNearestFiltered(target []float32, points [][]float32, keep func(i int) bool) (int, float32) {
	best := -1
	bestDist := float32(math.Inf(1))
	for i, p := range points {
		if !keep(i) {
			continue
		}
		if d := distance.SquaredL2(target, p); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
