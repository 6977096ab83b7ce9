package memo

import (
	"context"
	"sync"
)

// Func is the signature of a function whose results can be memoized.
//
// The function must be deterministic (same key, same value) and free of
// side effects; the cache relies on both to make duplicate suppression
// indistinguishable from recomputation.
type Func[K comparable, V any] func(ctx context.Context, key K) (V, error)

// entry tracks one in-flight or committed computation. The ready channel is
// closed exactly once, after value and err are set.
type entry[V any] struct {
	ready chan struct{}
	value V
	err   error
}

// Cache memoizes a Func with strict single computation per key.
//
// Contract:
// - Concurrency: safe for concurrent use; the wrapped function is invoked at
//   most once per key, ever. Concurrent callers for an uncommitted key wait
//   for the first caller's result.
// - Context: a waiting caller returns ctx.Err() on cancellation; the
//   computation itself continues under the first caller's context.
// - Errors: a failed computation is reported to every caller of that round
//   and is NOT committed; a later Get for the same key invokes the function
//   again.
//
// The internal lock is never held while the wrapped function runs, so a
// function that reenters Get for a different key cannot deadlock. Reentry on
// the same key deadlocks by construction, as it would in any
// single-computation scheme.
type Cache[K comparable, V any] struct {
	fn     Func[K, V]
	onHit  func(K)
	onMiss func(K)

	mu      sync.Mutex
	entries map[K]*entry[V]
}

// Option configures a Cache at construction time.
type Option[K comparable] func(*hooks[K])

type hooks[K comparable] struct {
	onHit  func(K)
	onMiss func(K)
}

// WithOnHit registers a callback fired when Get is served without invoking
// the wrapped function. The callback must be fast and must not call back
// into the cache.
func WithOnHit[K comparable](fn func(K)) Option[K] {
	return func(h *hooks[K]) { h.onHit = fn }
}

// WithOnMiss registers a callback fired when Get triggers a computation.
func WithOnMiss[K comparable](fn func(K)) Option[K] {
	return func(h *hooks[K]) { h.onMiss = fn }
}

// New creates a Cache around fn. Panics if fn is nil.
func New[K comparable, V any](fn Func[K, V], opts ...Option[K]) *Cache[K, V] {
	if fn == nil {
		panic("memo: nil function")
	}

	var h hooks[K]
	for _, opt := range opts {
		opt(&h)
	}

	return &Cache[K, V]{
		fn:      fn,
		onHit:   h.onHit,
		onMiss:  h.onMiss,
		entries: make(map[K]*entry[V]),
	}
}

// Get returns the committed value for key, computing it if necessary.
//
// The first caller for an uncommitted key runs the computation; concurrent
// callers for the same key block until it finishes. All callers of one round
// observe the same value or the same error.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		c.mu.Unlock()
		if c.onHit != nil {
			c.onHit(key)
		}

		select {
		case <-e.ready:
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
		return e.value, e.err
	}

	// This caller owns the computation for key.
	e = &entry[V]{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	if c.onMiss != nil {
		c.onMiss(key)
	}

	e.value, e.err = c.fn(ctx, key)
	if e.err != nil {
		// Failures are not committed. Remove the entry before releasing the
		// waiters so a subsequent Get starts a fresh computation.
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
	}
	close(e.ready)

	return e.value, e.err
}

// Len returns the number of tracked keys, including computations that are
// still in flight.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Memoize wraps fn in a fresh Cache and returns its Get as a drop-in
// replacement for fn.
func Memoize[K comparable, V any](fn Func[K, V]) Func[K, V] {
	return New(fn).Get
}
