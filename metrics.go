package hkmeans

import (
	"sync/atomic"
	"time"
)

// IterationStats describes the work performed by a single iteration.
type IterationStats struct {
	// Iteration is the zero-based iteration index.
	Iteration int
	// Pruned counts points skipped by the bound test alone.
	Pruned int
	// Tightened counts points skipped after recomputing the upper bound.
	Tightened int
	// Searched counts points that needed a full nearest-centroid search.
	Searched int
	// Reassigned counts points that changed cluster.
	Reassigned int
	// Empty counts clusters without points after the update.
	Empty int
	// Movement is the total squared centroid movement.
	Movement float64
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter     prometheus.Counter
//	    prunedCounter  prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordIteration(s hkmeans.IterationStats) {
//	    p.prunedCounter.Add(float64(s.Pruned + s.Tightened))
//	}
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// n is the number of points, err is nil if successful.
	RecordRun(k, n, iterations int, duration time.Duration, err error)

	// RecordIteration is called once per iteration of a run.
	RecordIteration(stats IterationStats)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(IterationStats)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount         atomic.Int64
	RunErrors        atomic.Int64
	RunTotalNanos    atomic.Int64
	PointsClustered  atomic.Int64
	IterationCount   atomic.Int64
	PrunedPoints     atomic.Int64
	TightenedPoints  atomic.Int64
	SearchedPoints   atomic.Int64
	ReassignedPoints atomic.Int64
	EmptyClusters    atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(k, n, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PointsClustered.Add(int64(n))
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(s IterationStats) {
	b.IterationCount.Add(1)
	b.PrunedPoints.Add(int64(s.Pruned))
	b.TightenedPoints.Add(int64(s.Tightened))
	b.SearchedPoints.Add(int64(s.Searched))
	b.ReassignedPoints.Add(int64(s.Reassigned))
	b.EmptyClusters.Add(int64(s.Empty))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:         b.RunCount.Load(),
		RunErrors:        b.RunErrors.Load(),
		RunAvgNanos:      b.getAvgRunNanos(),
		PointsClustered:  b.PointsClustered.Load(),
		IterationCount:   b.IterationCount.Load(),
		PrunedPoints:     b.PrunedPoints.Load(),
		TightenedPoints:  b.TightenedPoints.Load(),
		SearchedPoints:   b.SearchedPoints.Load(),
		ReassignedPoints: b.ReassignedPoints.Load(),
		EmptyClusters:    b.EmptyClusters.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount         int64
	RunErrors        int64
	RunAvgNanos      int64
	PointsClustered  int64
	IterationCount   int64
	PrunedPoints     int64
	TightenedPoints  int64
	SearchedPoints   int64
	ReassignedPoints int64
	EmptyClusters    int64
}

// PruneRate returns the fraction of point visits that avoided a full search.
func (s BasicMetricsStats) PruneRate() float64 {
	total := s.PrunedPoints + s.TightenedPoints + s.SearchedPoints
	if total == 0 {
		return 0
	}
	return float64(s.PrunedPoints+s.TightenedPoints) / float64(total)
}
