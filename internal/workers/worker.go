package workers

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/cpu"
)

// worker pulls tasks until the channel closes or the context is cancelled.
// In fail-fast mode a task error ends the worker, which cancels the group.
func (wp *WorkerPool[T, R]) worker(
	ctx context.Context,
	id int,
	taskChan <-chan indexedTask[T],
	processFn ProcessFunc[T, R],
	collect func(indexedTask[T], R, error),
) error {
	if wp.pinWorkers {
		defer cpu.SetupWorkerAffinity(id)()
	}

	for {
		select {
		case t, ok := <-taskChan:
			if !ok {
				return nil
			}

			if wp.rateLimiter != nil {
				if err := wp.rateLimiter.Wait(ctx); err != nil {
					return err
				}
			}

			if wp.beforeTaskStart != nil {
				wp.beforeTaskStart(t.task)
			}
			result, err := wp.processWithRecovery(ctx, t.task, processFn)
			if wp.onTaskEnd != nil {
				wp.onTaskEnd(t.task, result, err)
			}

			if err != nil && !wp.continueOnError {
				return err
			}
			collect(t, result, err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processWithRecovery runs processFn with panic recovery and the configured
// retry policy.
func (wp *WorkerPool[T, R]) processWithRecovery(
	ctx context.Context,
	task T,
	processFn ProcessFunc[T, R],
) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	maxAttempts := max(wp.maxAttempts, 1)
	for attempt := range maxAttempts {
		if attempt > 0 && wp.backoff != nil {
			if delay := wp.backoff.NextDelay(attempt-1, err); delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-ctx.Done():
					timer.Stop()
					return result, ctx.Err()
				}
			}
		}

		result, err = processFn(ctx, task)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return result, err
		}
		if wp.retryIf != nil && !wp.retryIf(err) {
			return result, err
		}

		if wp.onRetry != nil && attempt < maxAttempts-1 {
			wp.onRetry(task, attempt+1, err)
		}
	}

	return result, err
}
