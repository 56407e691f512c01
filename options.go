package kdgo

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	parallelism      int
}

// Option configures Index construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kdgo.BasicMetricsCollector{}
//	ix, _ := kdgo.New(3, kdgo.WithMetricsCollector(metrics))
//	// ... perform operations ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging (uses NoopLogger).
//
// Example:
//
//	logger := kdgo.NewJSONLogger(slog.LevelInfo)
//	ix, _ := kdgo.New(3, kdgo.WithLogger(logger))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithDefaultParallelism sets how many targets BatchNearest searches at once
// when the call does not set its own limit. Values below 1 select
// runtime.GOMAXPROCS(0).
func WithDefaultParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
