// Package pool provides a fixed-size worker pool implementation
package pool

import "github.com/google/uuid"

// FuncJob adapts a plain closure to the Job interface
type FuncJob struct {
	id string
	fn func()
}

// NewFuncJob creates a job from a closure with a generated ID
func NewFuncJob(fn func()) *FuncJob {
	return &FuncJob{
		id: "job-" + uuid.NewString(),
		fn: fn,
	}
}

// NewFuncJobWithID creates a job from a closure with a custom ID
func NewFuncJobWithID(id string, fn func()) *FuncJob {
	return &FuncJob{
		id: id,
		fn: fn,
	}
}

// Run executes the wrapped closure
func (j *FuncJob) Run() {
	if j.fn == nil {
		return
	}
	j.fn()
}

// ID returns the job ID
func (j *FuncJob) ID() string {
	return j.id
}
