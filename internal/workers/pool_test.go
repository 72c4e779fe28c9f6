package workers

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/load"
)

func TestWorkerPool_Process_PreservesOrder(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(4))

	tasks := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	results, err := pool.Process(context.Background(), tasks, func(ctx context.Context, task int) (int, error) {
		return task * 2, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}
	for i, task := range tasks {
		if results[i] != task*2 {
			t.Errorf("task %d: expected %d, got %d", i, task*2, results[i])
		}
	}
}

func TestWorkerPool_Process_EmptyTasks(t *testing.T) {
	pool := NewWorkerPool[int, int]()

	results, err := pool.Process(context.Background(), nil, func(ctx context.Context, task int) (int, error) {
		return task, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestWorkerPool_Process_LoadRuns(t *testing.T) {
	pool := NewWorkerPool[int, load.Result](WithWorkerCount(4))

	results, err := pool.Process(context.Background(), make([]int, 8), func(ctx context.Context, _ int) (load.Result, error) {
		return load.Run(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := load.Compute()
	for i, r := range results {
		if r.Accumulator != want {
			t.Errorf("run %d: expected accumulator %v, got %v", i, want, r.Accumulator)
		}
	}
}

func TestWorkerPool_Process_FailFast(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(2))
	expectedErr := errors.New("request failed")

	_, err := pool.Process(context.Background(), []int{1, 2, 3, 4, 5}, func(ctx context.Context, task int) (int, error) {
		if task == 3 {
			return 0, expectedErr
		}
		return task, nil
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
}

func TestWorkerPool_Process_ContinueOnError(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(3), WithContinueOnError())
	errOdd := errors.New("odd task")

	var processed atomic.Int32
	results, err := pool.Process(context.Background(), []int{1, 2, 3, 4, 5, 6}, func(ctx context.Context, task int) (int, error) {
		processed.Add(1)
		if task%2 == 1 {
			return 0, errOdd
		}
		return task * 10, nil
	})

	if processed.Load() != 6 {
		t.Errorf("expected all 6 tasks processed, got %d", processed.Load())
	}
	if !errors.Is(err, errOdd) {
		t.Fatalf("expected joined error wrapping %v, got %v", errOdd, err)
	}
	if got := strings.Count(err.Error(), "odd task"); got != 3 {
		t.Errorf("expected 3 task errors, got %d in %q", got, err.Error())
	}

	want := []int{0, 20, 0, 40, 0, 60}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("slot %d: expected %d, got %d", i, want[i], results[i])
		}
	}
}

func TestWorkerPool_Process_ContextCancellation(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(4))

	ctx, cancel := context.WithCancel(context.Background())
	tasks := make([]int, 100)

	var processedCount atomic.Int32
	_, err := pool.Process(ctx, tasks, func(ctx context.Context, task int) (int, error) {
		if processedCount.Add(1) == 5 {
			cancel()
		}
		time.Sleep(5 * time.Millisecond)
		return task, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if processedCount.Load() >= int32(len(tasks)) {
		t.Errorf("expected cancellation to stop work early, processed %d", processedCount.Load())
	}
}

func TestWorkerPool_Process_PanicRecovery(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(2))

	_, err := pool.Process(context.Background(), []int{1, 2, 3}, func(ctx context.Context, task int) (int, error) {
		if task == 2 {
			panic("boom")
		}
		return task, nil
	})
	if err == nil {
		t.Fatal("expected panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "worker panic: boom") {
		t.Errorf("expected panic message in error, got %v", err)
	}
}

func TestWorkerPool_Process_RetriesUntilSuccess(t *testing.T) {
	var retries []int
	pool := NewWorkerPool[int, int](
		WithWorkerCount(1),
		WithRetryPolicy(3, time.Millisecond),
		WithOnRetry(func(task int, attempt int, err error) {
			retries = append(retries, attempt)
		}),
	)

	var attempts atomic.Int32
	results, err := pool.Process(context.Background(), []int{7}, func(ctx context.Context, task int) (int, error) {
		if attempts.Add(1) < 3 {
			return 0, errors.New("transient")
		}
		return task, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0] != 7 {
		t.Errorf("expected 7, got %d", results[0])
	}
	if attempts.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts.Load())
	}
	if len(retries) != 2 || retries[0] != 1 || retries[1] != 2 {
		t.Errorf("expected retry hooks for attempts [1 2], got %v", retries)
	}
}

func TestWorkerPool_Process_RetriesExhausted(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(1), WithRetryPolicy(2, time.Millisecond))
	errDown := errors.New("server down")

	var attempts atomic.Int32
	_, err := pool.Process(context.Background(), []int{1}, func(ctx context.Context, task int) (int, error) {
		attempts.Add(1)
		return 0, errDown
	})
	if !errors.Is(err, errDown) {
		t.Fatalf("expected %v, got %v", errDown, err)
	}
	if attempts.Load() != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts.Load())
	}
}

func TestWorkerPool_Process_RetryIfStopsOnPermanentError(t *testing.T) {
	errPermanent := errors.New("bad request")
	pool := NewWorkerPool[int, int](
		WithWorkerCount(1),
		WithRetryPolicy(5, time.Millisecond),
		WithRetryIf(func(err error) bool { return !errors.Is(err, errPermanent) }),
	)

	var attempts atomic.Int32
	_, err := pool.Process(context.Background(), []int{1}, func(ctx context.Context, task int) (int, error) {
		attempts.Add(1)
		return 0, errPermanent
	})
	if !errors.Is(err, errPermanent) {
		t.Fatalf("expected %v, got %v", errPermanent, err)
	}
	if attempts.Load() != 1 {
		t.Errorf("expected a single attempt for a non-retryable error, got %d", attempts.Load())
	}
}

func TestWorkerPool_Process_RateLimit(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(4), WithRateLimit(100, 1))

	start := time.Now()
	_, err := pool.Process(context.Background(), make([]int, 6), func(ctx context.Context, task int) (int, error) {
		return task, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// burst 1 at 100/s: 5 waits of 10ms after the first token.
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected rate limiting to take at least 40ms, took %v", elapsed)
	}
}

func TestWorkerPool_Hooks(t *testing.T) {
	var started, ended atomic.Int32
	pool := NewWorkerPool[int, string](
		WithWorkerCount(2),
		WithBeforeTaskStart(func(task int) { started.Add(1) }),
		WithOnTaskEnd(func(task int, res string, err error) { ended.Add(1) }),
	)

	_, err := pool.Process(context.Background(), []int{1, 2, 3, 4}, func(ctx context.Context, task int) (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if started.Load() != 4 || ended.Load() != 4 {
		t.Errorf("expected 4 start and 4 end hooks, got %d and %d", started.Load(), ended.Load())
	}
}

func TestWorkerPool_HookTypeMismatchPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for mismatched hook type")
		}
		if !strings.Contains(r.(string), "WithOnTaskEnd") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()

	NewWorkerPool[int, int](WithOnTaskEnd(func(task string, res int, err error) {}))
}

func TestWorkerPool_CPUPinning(t *testing.T) {
	pool := NewWorkerPool[int, float64](WithWorkerCount(2), WithCPUPinning())

	results, err := pool.Process(context.Background(), make([]int, 4), func(ctx context.Context, _ int) (float64, error) {
		return load.Compute(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range results {
		if r != load.Compute() {
			t.Errorf("run %d: unexpected accumulator %v", i, r)
		}
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool[int, int]()
	if pool.WorkerCount() < 1 {
		t.Errorf("expected at least one worker, got %d", pool.WorkerCount())
	}
}
