package observe

import (
	"context"
	"io"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// BenchmarkLogger_Info measures a single structured log line.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark entry", Field{Key: "i", Value: i})
	}
}

// BenchmarkLogger_FilteredOut measures the cost of a suppressed entry.
func BenchmarkLogger_FilteredOut(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "suppressed", Field{Key: "i", Value: i})
	}
}

// BenchmarkMetrics_RecordRun measures one run recording.
func BenchmarkMetrics_RecordRun(b *testing.B) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	m, err := NewMetrics(mp.Meter("bench"))
	if err != nil {
		b.Fatalf("NewMetrics failed: %v", err)
	}
	meta := TaskMeta{Name: "bench", Batch: "suite"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordRun(ctx, meta, time.Millisecond, nil)
	}
}

// BenchmarkCacheStats_Hit measures a hit increment.
func BenchmarkCacheStats_Hit(b *testing.B) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	stats, err := NewCacheStats(mp.Meter("bench"), "bench")
	if err != nil {
		b.Fatalf("NewCacheStats failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stats.Hit()
	}
}
