// Package memo provides a thread-safe memoizing cache for pure functions.
//
// A Cache wraps a deterministic, side-effect-free function and guarantees
// strict single computation: for each key the wrapped function is invoked at
// most once across all goroutines, and every concurrent caller for the same
// key receives the identical committed value. Failed computations are never
// committed; the next lookup for that key retries.
//
// Entries live for the lifetime of the cache. There is no eviction, no TTL,
// and no capacity bound.
package memo
