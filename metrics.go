package kdgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called after each bulk build.
	// count is the number of points passed in.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	// removed is false when the point was absent.
	RecordRemove(removed bool, duration time.Duration, err error)

	// RecordLookup is called after each exact-match lookup.
	RecordLookup(found bool, duration time.Duration, err error)

	// RecordSearch is called after each nearest neighbor search.
	RecordSearch(duration time.Duration, err error)

	// RecordBatchSearch is called after each batch search.
	// count is the number of targets.
	RecordBatchSearch(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)           {}
func (NoopMetricsCollector) RecordRemove(bool, time.Duration, error)     {}
func (NoopMetricsCollector) RecordLookup(bool, time.Duration, error)     {}
func (NoopMetricsCollector) RecordSearch(time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchSearch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildPoints       atomic.Int64
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	RemoveErrors      atomic.Int64
	LookupCount       atomic.Int64
	LookupHits        atomic.Int64
	LookupErrors      atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	BatchSearchCount  atomic.Int64
	BatchSearchItems  atomic.Int64
	BatchSearchErrors atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(count))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed bool, duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	switch {
	case err != nil:
		b.RemoveErrors.Add(1)
	case !removed:
		b.RemoveMisses.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(found bool, duration time.Duration, err error) {
	b.LookupCount.Add(1)
	switch {
	case err != nil:
		b.LookupErrors.Add(1)
	case found:
		b.LookupHits.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count int, duration time.Duration, err error) {
	b.BatchSearchCount.Add(1)
	b.BatchSearchItems.Add(int64(count))
	if err != nil {
		b.BatchSearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:        b.BuildCount.Load(),
		BuildErrors:       b.BuildErrors.Load(),
		BuildPoints:       b.BuildPoints.Load(),
		InsertCount:       b.InsertCount.Load(),
		InsertErrors:      b.InsertErrors.Load(),
		InsertAvgNanos:    avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		RemoveCount:       b.RemoveCount.Load(),
		RemoveMisses:      b.RemoveMisses.Load(),
		RemoveErrors:      b.RemoveErrors.Load(),
		LookupCount:       b.LookupCount.Load(),
		LookupHits:        b.LookupHits.Load(),
		LookupErrors:      b.LookupErrors.Load(),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		BatchSearchCount:  b.BatchSearchCount.Load(),
		BatchSearchItems:  b.BatchSearchItems.Load(),
		BatchSearchErrors: b.BatchSearchErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount        int64
	BuildErrors       int64
	BuildPoints       int64
	InsertCount       int64
	InsertErrors      int64
	InsertAvgNanos    int64
	RemoveCount       int64
	RemoveMisses      int64
	RemoveErrors      int64
	LookupCount       int64
	LookupHits        int64
	LookupErrors      int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	BatchSearchCount  int64
	BatchSearchItems  int64
	BatchSearchErrors int64
}
