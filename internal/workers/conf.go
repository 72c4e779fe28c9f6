package workers

import (
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/algorithms"
	"golang.org/x/time/rate"
)

// WorkerPoolOption is a functional option for configuring the worker pool.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount     int
	taskBuffer      int
	maxAttempts     int
	initialDelay    time.Duration
	backoffType     algorithms.BackoffType
	maxDelay        time.Duration
	jitterFactor    float64
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool
	retryIf         func(error) bool

	// Hooks are stored untyped and checked against the pool's T and R in
	// NewWorkerPool.
	beforeTaskStart any
	onTaskEnd       any
	onRetry         any
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the buffer size of the task channel.
// If not specified, defaults to the number of workers.
func WithTaskBuffer(size int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithRetryPolicy retries failed tasks up to maxAttempts total attempts,
// waiting initialDelay before the first retry and backing off after that.
func WithRetryPolicy(maxAttempts int, initialDelay time.Duration) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if maxAttempts > 0 {
			cfg.maxAttempts = maxAttempts
		}
		if initialDelay > 0 {
			cfg.initialDelay = initialDelay
		}
	}
}

// WithRetryIf limits retries to errors for which shouldRetry returns true.
// Other errors fail the task on the attempt that produced them.
func WithRetryIf(shouldRetry func(error) bool) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.retryIf = shouldRetry
	}
}

// WithBackoff selects the retry backoff algorithm. maxDelay caps a single
// wait (0 = uncapped); jitterFactor only applies to BackoffJittered.
func WithBackoff(backoffType algorithms.BackoffType, maxDelay time.Duration, jitterFactor float64) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.backoffType = backoffType
		cfg.maxDelay = maxDelay
		cfg.jitterFactor = jitterFactor
	}
}

// WithRateLimit caps task starts at tasksPerSecond with the given burst.
//
// Example:
//
//	WithRateLimit(50, 5) // at most 50 requests/sec, 5 at once
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithContinueOnError keeps processing after a task fails. Process then
// returns all task errors joined together.
func WithContinueOnError() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.continueOnError = true
	}
}

// WithCPUPinning locks each worker to an OS thread pinned to its own core.
func WithCPUPinning() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.pinWorkers = true
	}
}

// WithBeforeTaskStart registers a hook called before each task starts.
// T must match the pool's task type, otherwise NewWorkerPool panics.
func WithBeforeTaskStart[T any](fn func(T)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.beforeTaskStart = fn
	}
}

// WithOnTaskEnd registers a hook called after each task finishes, including
// failed ones. T and R must match the pool's types.
func WithOnTaskEnd[T, R any](fn func(T, R, error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.onTaskEnd = fn
	}
}

// WithOnRetry registers a hook called before each retry with the upcoming
// attempt number (1 = first retry) and the error that caused it.
func WithOnRetry[T any](fn func(T, int, error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.onRetry = fn
	}
}
