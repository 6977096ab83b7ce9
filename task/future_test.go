package task

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFuture_SupplyGet(t *testing.T) {
	f := Supply(context.Background(), func(context.Context) (int, error) {
		return 41 + 1, nil
	})

	got, err := f.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}

	// Get is repeatable.
	again, err := f.Get(context.Background())
	if err != nil || again != 42 {
		t.Errorf("second Get = (%d, %v), want (42, nil)", again, err)
	}
}

func TestFuture_GetCancellation(t *testing.T) {
	release := make(chan struct{})
	f := Supply(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Get(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get on pending future = %v, want context.DeadlineExceeded", err)
	}

	close(release)
	if _, err := f.Get(context.Background()); err != nil {
		t.Errorf("Get after resolve failed: %v", err)
	}
}

func TestThen_MapsValue(t *testing.T) {
	f := Supply(context.Background(), func(context.Context) (string, error) {
		return "payload", nil
	})
	mapped := Then(f, func(s string) (string, error) {
		return "mapped:" + strings.ToUpper(s), nil
	})

	got, err := mapped.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "mapped:PAYLOAD" {
		t.Errorf("Get = %q, want mapped:PAYLOAD", got)
	}
}

func TestThen_SkipsOnError(t *testing.T) {
	boom := errors.New("supplier failure")
	f := Supply(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	called := false
	mapped := Then(f, func(s string) (int, error) {
		called = true
		return len(s), nil
	})

	_, err := mapped.Get(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Get = %v, want %v", err, boom)
	}
	if called {
		t.Error("mapper ran despite upstream error")
	}
}

func TestFallback_RecoversError(t *testing.T) {
	boom := errors.New("random failure")
	f := Supply(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})
	recovered := Fallback(f, func(err error) string {
		return "fallback:" + err.Error()
	})

	got, err := recovered.Get(context.Background())
	if err != nil {
		t.Fatalf("Get after Fallback failed: %v", err)
	}
	if got != "fallback:random failure" {
		t.Errorf("Get = %q, want fallback:random failure", got)
	}
}

func TestFallback_PassesValueThrough(t *testing.T) {
	f := Supply(context.Background(), func(context.Context) (string, error) {
		return "ok", nil
	})
	recovered := Fallback(f, func(error) string { return "unused" })

	got, err := recovered.Get(context.Background())
	if err != nil || got != "ok" {
		t.Errorf("Get = (%q, %v), want (ok, nil)", got, err)
	}
}

func TestSupplyOn_RunsOnPool(t *testing.T) {
	p := NewPool(PoolConfig{Workers: 1, NamePrefix: "pipe"})
	defer p.Close()

	f, err := SupplyOn(context.Background(), p, func(ctx context.Context) (string, error) {
		id, _ := RunID(ctx)
		return id, nil
	})
	if err != nil {
		t.Fatalf("SupplyOn failed: %v", err)
	}

	id, err := f.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !strings.HasPrefix(id, "pipe-") {
		t.Errorf("task ran without a pool run ID: %q", id)
	}
}

func TestSupplyOn_ClosedPool(t *testing.T) {
	p := NewPool(PoolConfig{})
	p.Close()

	_, err := SupplyOn(context.Background(), p, func(context.Context) (int, error) {
		return 0, nil
	})
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("SupplyOn on closed pool = %v, want ErrPoolClosed", err)
	}
}

func TestPipeline_SupplyThenFallback(t *testing.T) {
	// The full supplier -> mapper -> fallback chain, failure branch.
	boom := errors.New("flaky upstream")
	f := Supply(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})
	pipeline := Fallback(
		Then(f, func(s string) (string, error) { return "mapped:" + s, nil }),
		func(err error) string { return "fallback:" + err.Error() },
	)

	got, err := pipeline.Get(context.Background())
	if err != nil {
		t.Fatalf("pipeline Get failed: %v", err)
	}
	if got != "fallback:flaky upstream" {
		t.Errorf("pipeline = %q, want fallback:flaky upstream", got)
	}
}
