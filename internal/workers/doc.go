// Package workers provides the generic worker pool used by the load
// benchmark to fan requests out over a fixed number of goroutines.
//
// A WorkerPool[T, R] processes a slice of tasks of type T with a
// ProcessFunc and returns results of type R in input order. The pool
// supports context cancellation, panic recovery, retries with exponential
// or jittered backoff, rate limiting, per-task hooks, and pinning workers
// to CPU cores, all configured through functional options.
//
// # Basic Usage
//
//	wp := workers.NewWorkerPool[int, load.Result](workers.WithWorkerCount(4))
//	results, err := wp.Process(ctx, make([]int, 100), func(ctx context.Context, _ int) (load.Result, error) {
//	    return load.Run(), nil
//	})
//
// # Error Handling
//
// By default the pool is fail-fast: the first task error cancels the
// remaining work and is returned. WithContinueOnError keeps going and
// returns every task error joined with errors.Join. Panics inside a
// ProcessFunc are converted to errors carrying the stack trace.
package workers
