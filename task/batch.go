package task

import (
	"context"
	"sync"
	"time"
)

// InvokeAllTimed runs tasks on the pool under a shared deadline and returns
// the values of the tasks that completed successfully in time, in task order.
//
// A task that fails or does not finish before the deadline is simply excluded
// from the result set; neither condition is reported as an error, so the
// returned slice may be shorter than tasks. Tasks still running when the
// deadline fires keep running until they observe their context, but their
// results are discarded.
func InvokeAllTimed[T any](ctx context.Context, pool *Pool, tasks []func(ctx context.Context) (T, error), timeout time.Duration) []T {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type slot struct {
		value T
		ok    bool
	}

	var (
		mu     sync.Mutex
		sealed bool
		wg     sync.WaitGroup
	)
	slots := make([]slot, len(tasks))

	for i, fn := range tasks {
		if fn == nil {
			continue
		}
		i, fn := i, fn

		wg.Add(1)
		err := pool.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			v, err := fn(ctx)
			if err != nil {
				return
			}

			mu.Lock()
			if !sealed {
				slots[i] = slot{value: v, ok: true}
			}
			mu.Unlock()
		})
		if err != nil {
			// Submission failed (pool closed, or deadline hit while waiting
			// for a slot): the task counts as unfinished.
			wg.Done()
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}

	// Seal before reading so stragglers cannot write past the deadline.
	mu.Lock()
	sealed = true
	results := make([]T, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.value)
		}
	}
	mu.Unlock()

	return results
}
