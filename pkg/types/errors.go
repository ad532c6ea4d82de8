// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrPoolClosed indicates the pool has begun shutdown and no longer
	// accepts jobs
	ErrPoolClosed = errors.New("pool is closed")

	// ErrNoWorkers indicates every worker has terminated
	ErrNoWorkers = errors.New("no live workers")

	// ErrNilJob indicates a nil job was submitted
	ErrNilJob = errors.New("job cannot be nil")

	// ErrShutdownTimeout indicates workers did not exit within the
	// configured shutdown timeout
	ErrShutdownTimeout = errors.New("timeout waiting for workers to exit")
)

// CreationError reports that a pool could not be built. There is no
// partially constructed pool behind it; callers must abort startup.
type CreationError struct {
	// Reason describes why construction failed
	Reason string
}

// Error implements the error interface
func (e *CreationError) Error() string {
	return fmt.Sprintf("pool creation failed: %s", e.Reason)
}

// NewCreationError creates a new CreationError
func NewCreationError(reason string) *CreationError {
	return &CreationError{Reason: reason}
}

// SendError reports that a job could not be enqueued. The job was not
// executed and has been dropped; other submissions are unaffected.
type SendError struct {
	// Reason describes why the job was rejected
	Reason string

	// Cause is the underlying condition, one of the predefined errors
	Cause error
}

// Error implements the error interface
func (e *SendError) Error() string {
	return fmt.Sprintf("job dispatch failed: %s", e.Reason)
}

// Unwrap returns the underlying error
func (e *SendError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is a specific error
func (e *SendError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewSendError creates a new SendError
func NewSendError(reason string, cause error) *SendError {
	return &SendError{Reason: reason, Cause: cause}
}
