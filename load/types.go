package load

import "time"

const (
	// OuterBound is the exclusive upper bound of the outer arithmetic loop.
	OuterBound = 300
	// InnerBound is the exclusive upper bound of the inner arithmetic loop.
	InnerBound = 300
	// SequenceInput is the argument passed to Fibonacci on every run.
	SequenceInput = 25

	// Intensity labels the workload in API responses.
	Intensity = "GENTLE"
)

// Result is the outcome of a single run of the workload.
// It is created fresh by each call and never shared between calls.
//
// Fields:
//   - Accumulator: The numeric result of the loop plus Fibonacci(SequenceInput)
//   - Elapsed: Monotonic wall-clock time spent computing Accumulator
type Result struct {
	Accumulator float64
	Elapsed     time.Duration
}

// ElapsedMillis returns Elapsed truncated to whole milliseconds.
func (r Result) ElapsedMillis() int64 {
	return max(r.Elapsed.Milliseconds(), 0)
}
