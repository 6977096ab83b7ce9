package task

import "errors"

// Sentinel errors for task operations.
var (
	// ErrPoolClosed is returned when submitting to a closed pool.
	ErrPoolClosed = errors.New("task: pool is closed")

	// ErrNilTask is returned when a nil task function is submitted.
	ErrNilTask = errors.New("task: nil task function")
)
