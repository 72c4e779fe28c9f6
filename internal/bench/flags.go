package bench

import (
	"flag"
	"fmt"
	"time"
)

// Flags holds the loadbench command line.
type Flags struct {
	Mode         string
	URL          string
	Requests     int
	Workers      int
	RPS          float64
	Burst        int
	Retries      int
	RetryDelay   time.Duration
	Iterations   int
	Warmup       int
	Pin          bool
	OutputFormat string
	Timeout      time.Duration
}

// DefineFlags registers the loadbench flags on fs without parsing.
func DefineFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.Mode, "mode", string(ModeLocal), "Where to run the workload: 'local' or 'remote'")
	fs.StringVar(&f.URL, "url", "", "Sensor API base URL for remote mode (env SENSORAPI_BASE_URL, default http://localhost:5000)")
	fs.IntVar(&f.Requests, "requests", 100, "Workload runs per iteration")
	fs.IntVar(&f.Workers, "workers", 0, "Number of workers (0 = NumCPU)")
	fs.Float64Var(&f.RPS, "rps", 0, "Remote mode: max requests per second (0 = unlimited)")
	fs.IntVar(&f.Burst, "burst", 1, "Remote mode: rate limiter burst")
	fs.IntVar(&f.Retries, "retries", 2, "Remote mode: retries per failed request")
	fs.DurationVar(&f.RetryDelay, "retry-delay", 50*time.Millisecond, "Remote mode: delay before the first retry")
	fs.IntVar(&f.Iterations, "iterations", 1, "Number of iterations")
	fs.IntVar(&f.Warmup, "warmup", 0, "Number of warmup runs")
	fs.BoolVar(&f.Pin, "pin", false, "Local mode: pin each worker to its own CPU core (Linux)")
	fs.StringVar(&f.OutputFormat, "output-format", FormatTable, "Output format: 'table' or 'json'")
	fs.DurationVar(&f.Timeout, "timeout", 10*time.Second, "Remote mode: per-request HTTP timeout")

	return f
}

// Validate checks the flag combination.
func (f *Flags) Validate() error {
	switch Mode(f.Mode) {
	case ModeLocal, ModeRemote:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, f.Mode)
	}
	if f.OutputFormat != FormatTable && f.OutputFormat != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, f.OutputFormat)
	}
	if f.Requests <= 0 {
		return fmt.Errorf("requests: %w", ErrInvalidCount)
	}
	if f.Iterations <= 0 {
		return fmt.Errorf("iterations: %w", ErrInvalidCount)
	}
	if f.Warmup < 0 {
		return fmt.Errorf("warmup: %w", ErrInvalidCount)
	}
	if f.Retries < 0 {
		return fmt.Errorf("retries: %w", ErrInvalidCount)
	}
	return nil
}
