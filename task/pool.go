package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// PoolConfig configures a Pool.
type PoolConfig struct {
	// Workers is the maximum number of concurrently running tasks.
	// Default: 4
	Workers int

	// NamePrefix prefixes the run ID attached to each task's context.
	// Default: "worker"
	NamePrefix string
}

// Pool runs submitted functions with bounded concurrency.
//
// Contract:
// - Concurrency: safe for concurrent use; at most Workers tasks run at once.
// - Context: Submit blocks while the pool is saturated and returns ctx.Err()
//   if the caller's context expires first.
// - Lifecycle: Close stops accepting submissions and waits for running tasks;
//   it is idempotent.
type Pool struct {
	config PoolConfig
	sem    *semaphore.Weighted
	wg     sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	active    int
	peak      int
	submitted int64
}

// NewPool creates a pool with the given configuration.
func NewPool(config PoolConfig) *Pool {
	if config.Workers <= 0 {
		config.Workers = 4
	}
	if config.NamePrefix == "" {
		config.NamePrefix = "worker"
	}

	return &Pool{
		config: config,
		sem:    semaphore.NewWeighted(int64(config.Workers)),
	}
}

type runIDKey struct{}

// RunID returns the run ID the pool attached to a task's context.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok
}

// newRunID builds "<prefix>-<6 hex chars>" from a fresh UUID.
func (p *Pool) newRunID() string {
	return p.config.NamePrefix + "-" + uuid.NewString()[:6]
}

// Submit schedules fn on the pool. It blocks until a worker slot is free or
// ctx is done. fn receives ctx extended with a run ID.
func (p *Pool) Submit(ctx context.Context, fn func(ctx context.Context)) error {
	if fn == nil {
		return ErrNilTask
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.wg.Add(1)
	p.submitted++
	p.mu.Unlock()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.wg.Done()
		return err
	}

	p.mu.Lock()
	p.active++
	if p.active > p.peak {
		p.peak = p.active
	}
	p.mu.Unlock()

	runCtx := context.WithValue(ctx, runIDKey{}, p.newRunID())
	go func() {
		defer func() {
			p.mu.Lock()
			p.active--
			p.mu.Unlock()
			p.sem.Release(1)
			p.wg.Done()
		}()
		fn(runCtx)
	}()

	return nil
}

// Wait blocks until every task submitted so far has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Close rejects further submissions and waits for running tasks to drain.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}

// PoolStats contains pool counters.
type PoolStats struct {
	Active    int
	Peak      int
	Workers   int
	Submitted int64
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PoolStats{
		Active:    p.active,
		Peak:      p.peak,
		Workers:   p.config.Workers,
		Submitted: p.submitted,
	}
}
