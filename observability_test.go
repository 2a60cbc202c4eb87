package hkmeans

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/hupe1980/hkmeans/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Cluster(ctx, fourPoints(), 2, 10, WithLogger(logger.WithDimension(2)), WithSampler(fixedSampler{0, 2}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"iteration completed"`)
	assert.Contains(t, out, `"msg":"cluster completed"`)
	assert.Contains(t, out, `"dimension":2`)
	assert.Contains(t, out, `"iterations":1`)

	buf.Reset()
	_, err = QuantizeRGB(ctx, []byte{1, 2, 3}, 2, 10, WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"quantize failed"`)
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.LogIteration(context.Background(), IterationStats{Iteration: 3})
	assert.Empty(t, buf.String())

	logger.WithK(4).WithCount(10).LogCluster(context.Background(), 4, 10, 2, nil)
	assert.Contains(t, buf.String(), "k=4")
	assert.Contains(t, buf.String(), "count=10")

	NoopLogger().LogCluster(context.Background(), 4, 10, 2, errors.New("ignored"))
}

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordRun(4, 100, 3, 2*time.Millisecond, nil)
	m.RecordRun(4, 50, 0, 4*time.Millisecond, errors.New("boom"))
	m.RecordIteration(IterationStats{Pruned: 6, Tightened: 2, Searched: 2, Reassigned: 1, Empty: 1})

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.RunAvgNanos)
	assert.Equal(t, int64(100), stats.PointsClustered)
	assert.Equal(t, int64(1), stats.IterationCount)
	assert.Equal(t, int64(1), stats.ReassignedPoints)
	assert.Equal(t, int64(1), stats.EmptyClusters)
	assert.InDelta(t, 0.8, stats.PruneRate(), 1e-12)

	assert.Zero(t, BasicMetricsStats{}.PruneRate())
	assert.Zero(t, (&BasicMetricsCollector{}).GetStats().RunAvgNanos)
}

func TestOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, 1, o.workers)
	assert.Zero(t, o.threshold)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	require.IsType(t, &sampler.Seeded{}, o.sampler)
	assert.Equal(t, uint64(0), o.sampler.(*sampler.Seeded).Seed())

	o = applyOptions([]Option{
		WithSeed(7),
		WithWorkers(-1),
		WithConvergenceThreshold(0.25),
		WithMetricsCollector(nil),
		WithLogger(nil),
		WithSampler(nil),
	})
	assert.Equal(t, uint64(7), o.sampler.(*sampler.Seeded).Seed())
	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)
	assert.Equal(t, 0.25, o.threshold)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)

	o = applyOptions([]Option{WithSampler(sampler.Platform{}), WithLogLevel(slog.LevelDebug)})
	assert.IsType(t, sampler.Platform{}, o.sampler)
	assert.True(t, o.logger.Enabled(context.Background(), slog.LevelDebug))
}
