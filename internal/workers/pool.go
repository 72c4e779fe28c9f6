package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/algorithms"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// WorkerPool processes batches of tasks on a bounded set of goroutines.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type WorkerPool[T any, R any] struct {
	workerCount     int
	taskBuffer      int
	maxAttempts     int
	backoff         algorithms.BackoffStrategy
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool
	retryIf         func(error) bool

	beforeTaskStart func(T)
	onTaskEnd       func(T, R, error)
	onRetry         func(T, int, error)
}

// NewWorkerPool creates a new worker pool with the given options.
// Default configuration: workers = GOMAXPROCS, buffer = worker count,
// one attempt per task, fail-fast.
//
// It panics if a hook option was registered with types that do not match
// T and R.
func NewWorkerPool[T any, R any](opts ...WorkerPoolOption) *WorkerPool[T, R] {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer == 0 {
		cfg.taskBuffer = cfg.workerCount
	}

	wp := &WorkerPool[T, R]{
		workerCount:     cfg.workerCount,
		taskBuffer:      cfg.taskBuffer,
		maxAttempts:     cfg.maxAttempts,
		rateLimiter:     cfg.rateLimiter,
		continueOnError: cfg.continueOnError,
		pinWorkers:      cfg.pinWorkers,
		retryIf:         cfg.retryIf,
	}
	if cfg.maxAttempts > 1 {
		wp.backoff = algorithms.NewBackoffStrategy(cfg.backoffType, cfg.initialDelay, cfg.maxDelay, cfg.jitterFactor)
	}

	wp.beforeTaskStart = checkHook[func(T)]("WithBeforeTaskStart", cfg.beforeTaskStart)
	wp.onTaskEnd = checkHook[func(T, R, error)]("WithOnTaskEnd", cfg.onTaskEnd)
	wp.onRetry = checkHook[func(T, int, error)]("WithOnRetry", cfg.onRetry)

	return wp
}

// WorkerCount returns the configured number of workers.
func (wp *WorkerPool[T, R]) WorkerCount() int {
	return wp.workerCount
}

// Process executes tasks concurrently and returns their results in input
// order.
//
// In fail-fast mode (the default) the first error cancels the remaining
// tasks and is returned together with the partial results. With
// WithContinueOnError every task runs; failed tasks leave the zero value
// of R in their slot and all errors are returned joined.
func (wp *WorkerPool[T, R]) Process(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	if len(tasks) == 0 {
		return []R{}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	taskChan := make(chan indexedTask[T], wp.taskBuffer)
	results := make([]R, len(tasks))

	var mu sync.Mutex
	var taskErrs []error
	collect := func(t indexedTask[T], res R, err error) {
		if err != nil {
			mu.Lock()
			taskErrs = append(taskErrs, fmt.Errorf("task %d: %w", t.index, err))
			mu.Unlock()
			return
		}
		results[t.index] = res
	}

	numWorkers := min(wp.workerCount, len(tasks))
	for id := range numWorkers {
		g.Go(func() error {
			return wp.worker(gctx, id, taskChan, processFn, collect)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return results, err
	}
	if len(taskErrs) > 0 {
		return results, errors.Join(taskErrs...)
	}
	return results, nil
}

func checkHook[F any](name string, hook any) F {
	var zero F
	if hook == nil {
		return zero
	}
	fn, ok := hook.(F)
	if !ok {
		panic(fmt.Sprintf("%s hook has type %T, but pool expects %T", name, hook, zero))
	}
	return fn
}
