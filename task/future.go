package task

import "context"

// Future is a one-shot container for the result of an asynchronous
// computation. A Future is resolved exactly once; Get may be called any
// number of times from any goroutine.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Supply starts fn in its own goroutine and returns its Future.
func Supply[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// SupplyOn starts fn on the pool and returns its Future. The submission
// itself can fail (closed pool, expired context); no Future exists then.
func SupplyOn[T any](ctx context.Context, pool *Pool, fn func(ctx context.Context) (T, error)) (*Future[T], error) {
	f := newFuture[T]()
	err := pool.Submit(ctx, func(ctx context.Context) {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Get waits for the future to resolve and returns its result, or ctx.Err()
// if the caller's context expires first.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed when the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Then returns a future resolving to fn applied to f's value. If f resolves
// with an error, fn is skipped and the error passes through.
func Then[T, R any](f *Future[T], fn func(T) (R, error)) *Future[R] {
	out := newFuture[R]()
	go func() {
		defer close(out.done)
		<-f.done
		if f.err != nil {
			out.err = f.err
			return
		}
		out.value, out.err = fn(f.value)
	}()
	return out
}

// Fallback returns a future that resolves to f's value, or to fn applied to
// f's error. The returned future never carries an error.
func Fallback[T any](f *Future[T], fn func(error) T) *Future[T] {
	out := newFuture[T]()
	go func() {
		defer close(out.done)
		<-f.done
		if f.err != nil {
			out.value = fn(f.err)
			return
		}
		out.value = f.value
	}()
	return out
}
