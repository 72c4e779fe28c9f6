package bench

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/client"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/cpu"
	"github.com/schollz/progressbar/v3"
)

// Run executes the benchmark described by f. Tables and JSON go to stdout,
// the progress bar to stderr.
func Run(ctx context.Context, f *Flags, stdout, stderr io.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}

	numWorkers := f.Workers
	if numWorkers <= 0 {
		numWorkers = cpu.NumCPU()
	}

	exec, err := newExecutor(ctx, f, numWorkers)
	if err != nil {
		return err
	}

	table := f.OutputFormat == FormatTable
	if table {
		printHeader(stdout, "GENTLE CPU LOAD BENCHMARK")
		printConfiguration(stdout, f, exec.name(), numWorkers)
	}

	for w := range f.Warmup {
		if _, err := exec.execute(ctx, f.Requests, nil); err != nil {
			return fmt.Errorf("warmup %d: %w", w+1, err)
		}
		runtime.GC()
	}

	var bar *progressbar.ProgressBar
	if table {
		colorFprintln(stdout, Bold, "Running Benchmark...")
		_, _ = fmt.Fprintln(stdout)
		bar = makeProgressBar(stderr, f.Requests*f.Iterations)
	}

	runs := make([]RunResult, 0, f.Iterations)
	for i := range f.Iterations {
		it, err := exec.execute(ctx, f.Requests, bar)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i+1, err)
		}
		runs = append(runs, summarize(exec.name(), it.samples, it.failed, it.elapsed))

		if i < f.Iterations-1 {
			runtime.GC()
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	final := runs[0]
	if len(runs) > 1 {
		final = CalculateStatsWithLatencyAveraging(exec.name(), runs)
	}

	if !table {
		return OutputJSON(stdout, Mode(f.Mode), exec.name(), final, runs)
	}

	if len(runs) > 1 {
		colorFprintf(stdout, Yellow, "  %d iterations, total time spread:\n", len(runs))
		PrintIterationStats(stdout, runs)
	}
	RenderResults(stdout, final)
	return nil
}

// newExecutor builds the executor for f.Mode. Remote mode checks /health
// first so a missing server fails before any load is sent.
func newExecutor(ctx context.Context, f *Flags, numWorkers int) (executor, error) {
	if Mode(f.Mode) == ModeLocal {
		return &localExecutor{workers: numWorkers, pin: f.Pin}, nil
	}

	c := client.New(&client.Options{BaseURL: f.URL, Timeout: f.Timeout})
	if _, err := c.Health(ctx); err != nil {
		return nil, fmt.Errorf("health check against %s: %w", c.BaseURL(), err)
	}

	return &remoteExecutor{
		client:     c,
		workers:    numWorkers,
		rps:        f.RPS,
		burst:      f.Burst,
		retries:    f.Retries,
		retryDelay: f.RetryDelay,
	}, nil
}
