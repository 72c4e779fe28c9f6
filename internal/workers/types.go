package workers

import "context"

// ProcessFunc processes one task. Returning an error marks the task as
// failed; it is retried if a retry policy is configured.
type ProcessFunc[T any, R any] func(ctx context.Context, task T) (R, error)

// indexedTask carries a task together with its position in the input slice.
type indexedTask[T any] struct {
	index int
	task  T
}
