package observe

import "errors"

// Configuration errors.
var (
	// ErrMissingServiceName indicates Config.ServiceName is empty.
	ErrMissingServiceName = errors.New("observe: service name is required")

	// ErrInvalidSampleRatio indicates Tracing.SampleRatio is not in [0.0, 1.0].
	ErrInvalidSampleRatio = errors.New("observe: sample ratio must be between 0.0 and 1.0")

	// ErrUnknownTracingExporter indicates an unknown tracing exporter name.
	ErrUnknownTracingExporter = errors.New("observe: unknown tracing exporter")

	// ErrUnknownMetricsExporter indicates an unknown metrics exporter name.
	ErrUnknownMetricsExporter = errors.New("observe: unknown metrics exporter")

	// ErrUnknownLogLevel indicates an unknown log level.
	ErrUnknownLogLevel = errors.New("observe: unknown log level")
)

// Runtime errors.
var (
	// ErrNilObserver indicates a nil Observer was provided.
	ErrNilObserver = errors.New("observe: observer is nil")

	// ErrMissingTaskName indicates TaskMeta.Name is empty.
	ErrMissingTaskName = errors.New("observe: task name is required")
)
