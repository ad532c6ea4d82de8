// Package types defines core interfaces and types for the worker pool library
package types

// Job defines a single, one-shot unit of work submitted to the pool.
// A job must be safe to hand to another goroutine and must not depend
// on the submitter's state at execution time. Ownership transfers to
// whichever worker claims it; it is invoked at most once.
type Job interface {
	// Run executes the unit of work
	Run()

	// ID returns the job ID (for diagnostics only)
	ID() string
}

// Pool defines the worker pool interface
type Pool interface {
	// Submit enqueues a job for asynchronous execution
	Submit(job Job) error

	// SubmitFunc enqueues a plain closure for asynchronous execution
	SubmitFunc(fn func()) error

	// Close stops intake, drains in-flight work and waits for every
	// worker to exit
	Close() error

	// Size returns the fixed size of the pool
	Size() int

	// Stats returns pool statistics
	Stats() PoolStats
}

// PoolStats defines basic statistics for a pool
type PoolStats struct {
	// Size is the fixed size of the pool
	Size int `json:"size"`

	// LiveWorkers is the number of workers that have not terminated
	LiveWorkers int `json:"live_workers"`

	// BusyWorkers is the number of workers currently running a job
	BusyWorkers int `json:"busy_workers"`

	// QueuedJobs is the number of jobs waiting to be claimed
	QueuedJobs int `json:"queued_jobs"`
}

// ErrorHandler defines an error handling function invoked for faults
// recovered inside jobs. The returned error is currently ignored.
type ErrorHandler func(error) error
