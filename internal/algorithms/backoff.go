package algorithms

import (
	"math/rand/v2"
	"time"
)


// exponentialBackoff waits initialDelay * 2^attempt, capped at maxDelay.
//
//	attempt 0: 1x initialDelay
//	attempt 1: 2x initialDelay
//	attempt 2: 4x initialDelay
type exponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
}

func newExponentialBackoff(initialDelay, maxDelay time.Duration) *exponentialBackoff {
	return &exponentialBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
	}
}

func (eb *exponentialBackoff) NextDelay(attemptNumber int, _ error) time.Duration {
	return calcExponentialDelay(attemptNumber, eb.initialDelay, eb.maxDelay)
}

func (eb *exponentialBackoff) Reset() {}

// jitteredBackoff multiplies the exponential delay by a random factor in
// [1-jitterFactor, 1+jitterFactor].
type jitteredBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	jitterFactor float64
	float64Fn    func() float64
}

// newJitteredBackoff clamps jitterFactor into [0, 1].
func newJitteredBackoff(initialDelay, maxDelay time.Duration, jitterFactor float64) *jitteredBackoff {
	return &jitteredBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		jitterFactor: clamp(jitterFactor, 0, 1),
		float64Fn:    rand.Float64, // #nosec G404 -- jitter does not need crypto randomness
	}
}

func (jb *jitteredBackoff) NextDelay(attemptNumber int, _ error) time.Duration {
	if attemptNumber < 0 {
		return 0
	}

	base := calcExponentialDelay(attemptNumber, jb.initialDelay, jb.maxDelay)
	multiplier := 1.0 + (jb.float64Fn()*2-1)*jb.jitterFactor

	return clamp(time.Duration(float64(base)*multiplier), 0, jb.maxDelay)
}

func (jb *jitteredBackoff) Reset() {}

func calcExponentialDelay(attemptNumber int, initialDelay, maxDelay time.Duration) time.Duration {
	if attemptNumber < 0 || initialDelay <= 0 {
		return 0
	}

	// initialDelay<<shift stays within maxDelay, so it cannot overflow.
	shift := uint(attemptNumber)
	if initialDelay > maxDelay>>shift {
		return maxDelay
	}
	return initialDelay << shift
}

func clamp[T ~int64 | ~float64](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
