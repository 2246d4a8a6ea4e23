package pool_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drop0ne/Roulette-Simulator/pool"
)

func TestNew_RejectsInvalidWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			p, err := pool.New(workers)
			if err != pool.ErrInvalidWorkerCount {
				t.Errorf("expected ErrInvalidWorkerCount, got %v", err)
			}
			if p != nil {
				t.Error("expected nil pool on construction error")
			}
		})
	}
}

func TestSubmit_BasicFunctionality(t *testing.T) {
	p, err := pool.New(2)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	future, err := pool.Submit(p, func(ctx context.Context) (string, error) {
		return "result-42", nil
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	value, err := future.Get()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if value != "result-42" {
		t.Errorf("expected 'result-42', got %v", value)
	}
}

func TestSubmit_MultipleSubmissions(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(2 * time.Second)

	numTasks := 100
	futures := make([]*pool.Future[int], numTasks)
	for i := 0; i < numTasks; i++ {
		i := i
		futures[i], err = pool.Submit(p, func(ctx context.Context) (int, error) {
			return i * 2, nil
		})
		if err != nil {
			t.Fatalf("failed to submit task %d: %v", i, err)
		}
	}

	for i, f := range futures {
		value, err := f.Get()
		if err != nil {
			t.Errorf("task %d: expected no error, got %v", i, err)
		}
		if value != i*2 {
			t.Errorf("task %d: expected %d, got %d", i, i*2, value)
		}
	}
}

func TestSubmit_HeterogeneousResultTypes(t *testing.T) {
	p, err := pool.New(2)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	fInt, err := pool.Submit(p, func(ctx context.Context) (int, error) { return 7, nil })
	if err != nil {
		t.Fatalf("failed to submit int task: %v", err)
	}
	fStr, err := pool.Submit(p, func(ctx context.Context) (string, error) { return "seven", nil })
	if err != nil {
		t.Fatalf("failed to submit string task: %v", err)
	}

	if v, err := fInt.Get(); err != nil || v != 7 {
		t.Errorf("int task: got (%v, %v)", v, err)
	}
	if v, err := fStr.Get(); err != nil || v != "seven" {
		t.Errorf("string task: got (%v, %v)", v, err)
	}
}

func TestSubmit_SingleWorkerExecutesFIFO(t *testing.T) {
	p, err := pool.New(1)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	var mu sync.Mutex
	var order []int

	numTasks := 50
	for i := 0; i < numTasks; i++ {
		i := i
		if _, err := pool.Submit(p, func(ctx context.Context) (struct{}, error) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return struct{}{}, nil
		}); err != nil {
			t.Fatalf("failed to submit task %d: %v", i, err)
		}
	}

	if err := p.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if len(order) != numTasks {
		t.Fatalf("expected %d executions, got %d", numTasks, len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("single worker must execute in submission order, got %v", order[:i+1])
		}
	}
}

func TestSubmit_EveryTaskExecutesExactlyOnce(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(5 * time.Second)

	numTasks := 8
	futures := make([]*pool.Future[int], numTasks)
	for i := 0; i < numTasks; i++ {
		i := i
		futures[i], err = pool.Submit(p, func(ctx context.Context) (int, error) {
			return i, nil
		})
		if err != nil {
			t.Fatalf("failed to submit task %d: %v", i, err)
		}
	}

	seen := make(map[int]int)
	for _, f := range futures {
		value, err := f.Get()
		if err != nil {
			t.Fatalf("unexpected task error: %v", err)
		}
		seen[value]++
	}

	for i := 0; i < numTasks; i++ {
		if seen[i] != 1 {
			t.Errorf("expected result %d exactly once, saw it %d times", i, seen[i])
		}
	}
}

func TestSubmit_ConcurrentSubmitters(t *testing.T) {
	p, err := pool.New(8)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(10 * time.Second)

	const (
		submitters        = 10
		tasksPerSubmitter = 100
	)

	var counter atomic.Int64
	var wg sync.WaitGroup
	futures := make(chan *pool.Future[struct{}], submitters*tasksPerSubmitter)

	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < tasksPerSubmitter; j++ {
				f, err := pool.Submit(p, func(ctx context.Context) (struct{}, error) {
					counter.Add(1)
					return struct{}{}, nil
				})
				if err != nil {
					t.Errorf("concurrent submit failed: %v", err)
					return
				}
				futures <- f
			}
		}()
	}

	wg.Wait()
	close(futures)

	for f := range futures {
		if _, err := f.Get(); err != nil {
			t.Errorf("unexpected task error: %v", err)
		}
	}

	if got := counter.Load(); got != submitters*tasksPerSubmitter {
		t.Errorf("expected counter %d, got %d", submitters*tasksPerSubmitter, got)
	}
}

func TestSubmit_TaskFailureIsIsolated(t *testing.T) {
	p, err := pool.New(2)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	taskErr := errors.New("task exploded")
	failing, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		return 0, taskErr
	})
	if err != nil {
		t.Fatalf("failed to submit failing task: %v", err)
	}

	if _, err := failing.Get(); !errors.Is(err, taskErr) {
		t.Errorf("expected task error %v, got %v", taskErr, err)
	}

	// A later, independent task still succeeds.
	ok, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		return 41, nil
	})
	if err != nil {
		t.Fatalf("failed to submit follow-up task: %v", err)
	}
	if v, err := ok.Get(); err != nil || v != 41 {
		t.Errorf("follow-up task: got (%v, %v)", v, err)
	}
}

func TestSubmit_PanicIsCapturedIntoFuture(t *testing.T) {
	p, err := pool.New(2)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	panicking, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		panic("boom")
	})
	if err != nil {
		t.Fatalf("failed to submit panicking task: %v", err)
	}

	if _, err := panicking.Get(); err == nil || !strings.Contains(err.Error(), "task panic") {
		t.Errorf("expected captured panic error, got %v", err)
	}

	// The worker survived the panic.
	ok, err := pool.Submit(p, func(ctx context.Context) (string, error) {
		return "alive", nil
	})
	if err != nil {
		t.Fatalf("failed to submit follow-up task: %v", err)
	}
	if v, err := ok.Get(); err != nil || v != "alive" {
		t.Errorf("follow-up task: got (%v, %v)", v, err)
	}
}

func TestSubmit_NeverBlocksOnCompletion(t *testing.T) {
	p, err := pool.New(1)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(5 * time.Second)

	release := make(chan struct{})
	blocker, err := pool.Submit(p, func(ctx context.Context) (struct{}, error) {
		<-release
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("failed to submit blocking task: %v", err)
	}

	// The single worker is busy; these submissions must still return
	// immediately.
	start := time.Now()
	for i := 0; i < 10; i++ {
		if _, err := pool.Submit(p, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, nil
		}); err != nil {
			t.Fatalf("failed to submit queued task %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("submissions blocked for %v", elapsed)
	}

	close(release)
	if _, err := blocker.Get(); err != nil {
		t.Errorf("blocking task failed: %v", err)
	}
}

func TestPool_Accessors(t *testing.T) {
	p, err := pool.New(3)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	if got := p.Workers(); got != 3 {
		t.Errorf("expected 3 workers, got %d", got)
	}
	if got := p.QueueLen(); got != 0 {
		t.Errorf("expected empty queue, got %d", got)
	}
}

func TestSubmit_WithRateLimit(t *testing.T) {
	p, err := pool.New(4, pool.WithRateLimit(1000, 4))
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(5 * time.Second)

	futures := make([]*pool.Future[int], 20)
	for i := range futures {
		i := i
		futures[i], err = pool.Submit(p, func(ctx context.Context) (int, error) {
			return i, nil
		})
		if err != nil {
			t.Fatalf("failed to submit task %d: %v", i, err)
		}
	}

	for i, f := range futures {
		if v, err := f.Get(); err != nil || v != i {
			t.Errorf("task %d: got (%v, %v)", i, v, err)
		}
	}
}
