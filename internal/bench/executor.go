package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/algorithms"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/client"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/workers"
	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/schollz/progressbar/v3"
)

// maxRetryDelay caps a single backoff wait in remote mode.
const maxRetryDelay = 2 * time.Second

// executor performs one iteration of n workload runs.
type executor interface {
	name() string
	execute(ctx context.Context, n int, bar *progressbar.ProgressBar) (iteration, error)
}

type iteration struct {
	samples []Sample
	failed  int
	elapsed time.Duration
}

// collector gathers samples from the pool's task-end hook.
type collector struct {
	mu      sync.Mutex
	samples []Sample
	failed  int
	bar     *progressbar.ProgressBar
}

func (c *collector) onTaskEnd(_ int, s Sample, err error) {
	c.mu.Lock()
	if err != nil {
		c.failed++
	} else {
		c.samples = append(c.samples, s)
	}
	c.mu.Unlock()

	if c.bar != nil {
		_ = c.bar.Add(1)
	}
}

func taskIndices(n int) []int {
	tasks := make([]int, n)
	for i := range tasks {
		tasks[i] = i
	}
	return tasks
}

type localExecutor struct {
	workers int
	pin     bool
}

func (e *localExecutor) name() string {
	if e.pin {
		return "local (pinned)"
	}
	return "local"
}

func (e *localExecutor) execute(ctx context.Context, n int, bar *progressbar.ProgressBar) (iteration, error) {
	col := &collector{bar: bar}
	opts := []workers.WorkerPoolOption{
		workers.WithWorkerCount(e.workers),
		workers.WithOnTaskEnd(col.onTaskEnd),
	}
	if e.pin {
		opts = append(opts, workers.WithCPUPinning())
	}
	pool := workers.NewWorkerPool[int, Sample](opts...)

	start := time.Now()
	_, err := pool.Process(ctx, taskIndices(n), func(ctx context.Context, _ int) (Sample, error) {
		began := time.Now()
		res := load.Run()
		return Sample{Calculation: res.Elapsed, RoundTrip: time.Since(began)}, nil
	})
	elapsed := time.Since(start)
	if err != nil {
		return iteration{}, err
	}

	return iteration{samples: col.samples, failed: col.failed, elapsed: elapsed}, nil
}

type remoteExecutor struct {
	client     *client.Client
	workers    int
	rps        float64
	burst      int
	retries    int
	retryDelay time.Duration
}

func (e *remoteExecutor) name() string {
	return "remote " + e.client.BaseURL()
}

func (e *remoteExecutor) execute(ctx context.Context, n int, bar *progressbar.ProgressBar) (iteration, error) {
	col := &collector{bar: bar}
	pool := workers.NewWorkerPool[int, Sample](
		workers.WithWorkerCount(e.workers),
		workers.WithRateLimit(e.rps, e.burst),
		workers.WithRetryPolicy(e.retries+1, e.retryDelay),
		workers.WithBackoff(algorithms.BackoffJittered, maxRetryDelay, 0.2),
		workers.WithRetryIf(client.IsRetryable),
		workers.WithContinueOnError(),
		workers.WithOnTaskEnd(col.onTaskEnd),
	)

	start := time.Now()
	_, err := pool.Process(ctx, taskIndices(n), func(ctx context.Context, _ int) (Sample, error) {
		began := time.Now()
		resp, err := e.client.CPULoad(ctx)
		if err != nil {
			return Sample{}, err
		}
		rtt := time.Since(began)

		calc, err := resp.Elapsed()
		if err != nil {
			return Sample{}, err
		}
		return Sample{Calculation: calc, RoundTrip: rtt}, nil
	})
	elapsed := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return iteration{}, ctxErr
	}
	if len(col.samples) == 0 {
		return iteration{}, fmt.Errorf("%w (%d): %w", ErrAllRequestsFailed, n, firstError(err))
	}

	return iteration{samples: col.samples, failed: col.failed, elapsed: elapsed}, nil
}

// firstError unwraps an errors.Join result to its first member.
func firstError(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	if err == nil {
		return errors.New("no samples collected")
	}
	return err
}
