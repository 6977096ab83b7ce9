package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records task run telemetry.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; recording is best-effort.
type Metrics interface {
	// RecordRun records one task run with its duration and error status.
	RecordRun(ctx context.Context, meta TaskMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	total    metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	total, err := meter.Int64Counter(
		"task.run.total",
		metric.WithDescription("Total number of task runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"task.run.errors",
		metric.WithDescription("Total number of failed task runs"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"task.run.duration_ms",
		metric.WithDescription("Task run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{total: total, failures: failures, duration: duration}, nil
}

func (m *metricsImpl) RecordRun(ctx context.Context, meta TaskMeta, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{attribute.String("task.name", meta.Name)}
	if meta.Batch != "" {
		attrs = append(attrs, attribute.String("task.batch", meta.Batch))
	}
	opt := metric.WithAttributes(attrs...)

	m.total.Add(ctx, 1, opt)
	if err != nil {
		m.failures.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics discards all recordings.
type noopMetrics struct{}

func (noopMetrics) RecordRun(context.Context, TaskMeta, time.Duration, error) {}

// CacheStats counts cache hits and misses on OpenTelemetry counters. Its Hit
// and Miss methods are shaped to slot into a memoizing cache's OnHit/OnMiss
// hooks:
//
//	stats, _ := observe.NewCacheStats(obs.Meter(), "fib")
//	c := memo.New(fib,
//	    memo.WithOnHit(func(int) { stats.Hit() }),
//	    memo.WithOnMiss(func(int) { stats.Miss() }))
type CacheStats struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
	attrs  metric.MeasurementOption
}

// NewCacheStats creates hit/miss counters labeled with the cache name.
func NewCacheStats(meter metric.Meter, cacheName string) (*CacheStats, error) {
	hits, err := meter.Int64Counter(
		"cache.hits",
		metric.WithDescription("Lookups served without computing"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"cache.misses",
		metric.WithDescription("Lookups that triggered a computation"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &CacheStats{
		hits:   hits,
		misses: misses,
		attrs:  metric.WithAttributes(attribute.String("cache.name", cacheName)),
	}, nil
}

// Hit records one lookup served from the cache.
func (s *CacheStats) Hit() {
	s.hits.Add(context.Background(), 1, s.attrs)
}

// Miss records one lookup that triggered a computation.
func (s *CacheStats) Miss() {
	s.misses.Add(context.Background(), 1, s.attrs)
}
