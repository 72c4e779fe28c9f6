package algorithms

import "time"

// BackoffType selects the retry backoff algorithm.
type BackoffType int

const (
	// BackoffExponential doubles the delay on every retry (default).
	BackoffExponential BackoffType = iota
	// BackoffJittered randomizes the exponential delay by ±jitterFactor so
	// concurrent requests do not retry in lockstep.
	BackoffJittered
)

// String returns the flag spelling of the backoff type.
func (b BackoffType) String() string {
	switch b {
	case BackoffJittered:
		return "jittered"
	default:
		return "exponential"
	}
}

// ParseBackoffType maps a flag value to a BackoffType. Unknown values fall
// back to BackoffExponential and report ok=false.
func ParseBackoffType(s string) (BackoffType, bool) {
	switch s {
	case "", "exponential":
		return BackoffExponential, true
	case "jittered":
		return BackoffJittered, true
	default:
		return BackoffExponential, false
	}
}

// NewBackoffStrategy creates the backoff strategy for the given type.
// A non-positive maxDelay means the delay is never capped.
func NewBackoffStrategy(
	backoffType BackoffType,
	initialDelay, maxDelay time.Duration,
	jitterFactor float64,
) BackoffStrategy {
	if maxDelay <= 0 {
		maxDelay = time.Duration(1<<63 - 1)
	}

	switch backoffType {
	case BackoffJittered:
		return newJitteredBackoff(initialDelay, maxDelay, jitterFactor)
	default:
		return newExponentialBackoff(initialDelay, maxDelay)
	}
}
