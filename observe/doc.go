// Package observe provides OpenTelemetry-backed instrumentation for task
// runs and caches.
//
// It is a pure instrumentation layer: no execution, no transport, no I/O
// beyond exporter setup. Construct an Observer from a Config, then either use
// its Tracer/Meter/Logger directly, wrap work with Middleware, or feed
// CacheStats hooks into a memoizing cache.
package observe
