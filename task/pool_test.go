package task

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Defaults(t *testing.T) {
	p := NewPool(PoolConfig{})
	if p.config.Workers != 4 {
		t.Errorf("default Workers = %d, want 4", p.config.Workers)
	}
	if p.config.NamePrefix != "worker" {
		t.Errorf("default NamePrefix = %q, want worker", p.config.NamePrefix)
	}
}

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := NewPool(PoolConfig{Workers: 2})
	ctx := context.Background()

	var ran int64
	for i := 0; i < 10; i++ {
		err := p.Submit(ctx, func(context.Context) {
			atomic.AddInt64(&ran, 1)
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	p.Wait()

	if n := atomic.LoadInt64(&ran); n != 10 {
		t.Errorf("ran %d tasks, want 10", n)
	}

	stats := p.Stats()
	if stats.Submitted != 10 {
		t.Errorf("Submitted = %d, want 10", stats.Submitted)
	}
	if stats.Active != 0 {
		t.Errorf("Active after Wait = %d, want 0", stats.Active)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 3
	p := NewPool(PoolConfig{Workers: workers})
	ctx := context.Background()

	var active, peak int64
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		err := p.Submit(ctx, func(context.Context) {
			cur := atomic.AddInt64(&active, 1)
			mu.Lock()
			if cur > peak {
				peak = cur
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&active, -1)
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	p.Wait()

	mu.Lock()
	defer mu.Unlock()
	if peak > workers {
		t.Errorf("observed %d concurrent tasks, want at most %d", peak, workers)
	}
	if got := p.Stats().Peak; got > workers {
		t.Errorf("Stats().Peak = %d, want at most %d", got, workers)
	}
}

func TestPool_RunID(t *testing.T) {
	p := NewPool(PoolConfig{Workers: 1, NamePrefix: "demo"})
	ctx := context.Background()

	ids := make(chan string, 2)
	for i := 0; i < 2; i++ {
		err := p.Submit(ctx, func(ctx context.Context) {
			id, ok := RunID(ctx)
			if !ok {
				t.Error("RunID missing from task context")
			}
			ids <- id
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	p.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if !strings.HasPrefix(id, "demo-") {
			t.Errorf("run ID %q missing prefix", id)
		}
		if len(id) != len("demo-")+6 {
			t.Errorf("run ID %q has unexpected length", id)
		}
		seen[id] = true
	}
	if len(seen) != 2 {
		t.Errorf("run IDs not unique: %v", seen)
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := NewPool(PoolConfig{Workers: 1})
	p.Close()

	err := p.Submit(context.Background(), func(context.Context) {})
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Submit after Close = %v, want ErrPoolClosed", err)
	}
}

func TestPool_SubmitNil(t *testing.T) {
	p := NewPool(PoolConfig{})
	err := p.Submit(context.Background(), nil)
	if !errors.Is(err, ErrNilTask) {
		t.Errorf("Submit(nil) = %v, want ErrNilTask", err)
	}
}

func TestPool_SubmitHonorsContext(t *testing.T) {
	p := NewPool(PoolConfig{Workers: 1})
	release := make(chan struct{})

	// Occupy the only worker.
	err := p.Submit(context.Background(), func(context.Context) {
		<-release
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = p.Submit(ctx, func(context.Context) {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("saturated Submit = %v, want context.DeadlineExceeded", err)
	}

	close(release)
	p.Wait()
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := NewPool(PoolConfig{})
	p.Close()
	p.Close()
}
