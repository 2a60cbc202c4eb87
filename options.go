package hkmeans

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/hkmeans/sampler"
)

type options struct {
	threshold        float64
	sampler          sampler.Sampler
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a clustering run.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		sampler:          sampler.NewSeeded(0),
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithConvergenceThreshold stops a run once the total squared centroid
// movement of an iteration falls below threshold. Defaults to 0, which stops
// only when no centroid moves.
func WithConvergenceThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithSeed selects the initial centroids deterministically from seed.
// The default seed is 0.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.sampler = sampler.NewSeeded(seed)
	}
}

// WithSampler configures the source of initial centroid indices.
//
// Example, nondeterministic initialization:
//
//	res, _ := hkmeans.Cluster(ctx, points, 8, 100, hkmeans.WithSampler(sampler.Platform{}))
//
// If nil is passed, the default seeded sampler is kept.
func WithSampler(s sampler.Sampler) Option {
	return func(o *options) {
		if s != nil {
			o.sampler = s
		}
	}
}

// WithWorkers sets the number of goroutines used for the per-point passes.
// A value <= 0 uses runtime.GOMAXPROCS(0). The default is 1.
//
// Results do not depend on the worker count, except for floating point
// summation order in the centroid sums.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for clustering runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hkmeans.BasicMetricsCollector{}
//	res, _ := hkmeans.Cluster(ctx, points, 8, 100, hkmeans.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Pruned: %d\n", stats.RunCount, stats.PrunedPoints)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for clustering runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hkmeans.NewJSONLogger(slog.LevelInfo)
//	res, _ := hkmeans.Cluster(ctx, points, 8, 100, hkmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
