package algorithms

import "time"

// BackoffStrategy decides how long a failed request waits before it is retried.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attemptNumber (0-indexed,
	// 0 = first retry after the initial failure). lastError is the failure that
	// triggered the retry.
	NextDelay(attemptNumber int, lastError error) time.Duration

	// Reset clears any per-task state before the strategy is reused.
	Reset()
}
