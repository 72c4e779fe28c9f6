package bench

import "errors"

var (
	ErrUnknownMode         = errors.New("unknown mode")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrInvalidCount        = errors.New("count must be positive")
	ErrAllRequestsFailed   = errors.New("all requests failed")
)
