package observe

import (
	"context"
	"time"
)

// RunFunc is the unit of work Middleware wraps.
type RunFunc func(ctx context.Context) error

// Middleware wraps task runs with tracing, metrics, and logging.
//
// Contract:
// - Concurrency: the wrapped RunFunc is safe for concurrent use if the
//   original is.
// - Errors: errors from the wrapped function are recorded and propagated
//   unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware from individual components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{tracer: tracer, metrics: metrics, logger: logger}
}

// MiddlewareFromObserver creates a Middleware wired to an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Wrap returns fn instrumented under meta: a span around the run, a counter
// and duration sample per run, and one log line per outcome.
func (m *Middleware) Wrap(meta TaskMeta, fn RunFunc) RunFunc {
	return func(ctx context.Context) error {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		err := fn(ctx)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordRun(ctx, meta, duration, err)

		logger := m.logger.WithTask(meta)
		fields := []Field{{Key: "duration_ms", Value: float64(duration.Milliseconds())}}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "task run failed", fields...)
		} else {
			logger.Info(ctx, "task run completed", fields...)
		}

		return err
	}
}
