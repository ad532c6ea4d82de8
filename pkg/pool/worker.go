package pool

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"hellopool/pkg/types"
)

// WorkerState defines the state of a Worker
type WorkerState int32

const (
	// WorkerStateIdle represents a worker waiting to claim a job
	WorkerStateIdle WorkerState = iota
	// WorkerStateRunning represents a worker executing a claimed job
	WorkerStateRunning
	// WorkerStateTerminated represents a worker whose goroutine has exited
	WorkerStateTerminated
)

// String returns the string representation of WorkerState
func (ws WorkerState) String() string {
	switch ws {
	case WorkerStateIdle:
		return "idle"
	case WorkerStateRunning:
		return "running"
	case WorkerStateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the state as its string form
func (ws WorkerState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ws.String() + `"`), nil
}

// Worker owns one goroutine that repeatedly claims the next job from
// the shared queue and runs it to completion. The id is for diagnostics
// only and never influences scheduling.
type Worker struct {
	id    int
	state int32 // atomic WorkerState
	queue *jobQueue
	done  chan struct{}

	// statistics
	totalProcessed int64
	totalFailed    int64

	// fault is the recovered panic that terminated this worker, if any.
	// Written before done is closed, read only after done.
	fault error

	errorHandler types.ErrorHandler
	onExit       func()
	metrics      *Metrics
	clock        types.Clock
}

func newWorker(id int, queue *jobQueue, clock types.Clock) *Worker {
	return &Worker{
		id:    id,
		state: int32(WorkerStateIdle),
		queue: queue,
		done:  make(chan struct{}),
		clock: clock,
	}
}

// ID returns the worker ID
func (w *Worker) ID() int {
	return w.id
}

// State returns the current worker state
func (w *Worker) State() WorkerState {
	return WorkerState(atomic.LoadInt32(&w.state))
}

// Done returns a channel closed when the worker goroutine has exited
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Fault returns the panic that terminated this worker, or nil. Valid
// only after Done is closed.
func (w *Worker) Fault() error {
	return w.fault
}

// run is the worker execution loop. It exits cleanly when the queue is
// closed and drained, or terminates early when a claimed job panics: a
// faulting job costs the pool this worker, with no replacement.
func (w *Worker) run() {
	defer func() {
		atomic.StoreInt32(&w.state, int32(WorkerStateTerminated))
		if w.onExit != nil {
			w.onExit()
		}
		close(w.done)
	}()

	for {
		job, ok := w.queue.pop()
		if !ok {
			return
		}
		if fault := w.runJob(job); fault != nil {
			w.fault = fault
			return
		}
	}
}

// runJob executes a single claimed job with panic recovery. A recovered
// panic is reported to the error handler and returned as the worker's
// terminal fault.
func (w *Worker) runJob(job types.Job) (fault error) {
	atomic.StoreInt32(&w.state, int32(WorkerStateRunning))
	start := w.clock.Now()

	if w.metrics != nil {
		w.metrics.BusyWorkers.Inc()
	}

	defer func() {
		elapsed := w.clock.Since(start)
		if w.metrics != nil {
			w.metrics.BusyWorkers.Dec()
			w.metrics.JobDuration.Observe(elapsed.Seconds())
		}

		if r := recover(); r != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			fault = fmt.Errorf("worker %d: job %s panicked: %v\n%s", w.id, job.ID(), r, buf[:n])

			atomic.AddInt64(&w.totalFailed, 1)
			if w.metrics != nil {
				w.metrics.JobsFailed.Inc()
			}
			if w.errorHandler != nil {
				_ = w.errorHandler(fault)
			}
			return
		}

		atomic.AddInt64(&w.totalProcessed, 1)
		if w.metrics != nil {
			w.metrics.JobsCompleted.Inc()
		}
		atomic.StoreInt32(&w.state, int32(WorkerStateIdle))
	}()

	job.Run()
	return nil
}

// Stats gets worker statistics
func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		ID:             w.id,
		State:          w.State(),
		TotalProcessed: atomic.LoadInt64(&w.totalProcessed),
		TotalFailed:    atomic.LoadInt64(&w.totalFailed),
	}
}

// WorkerStats defines worker statistics
type WorkerStats struct {
	ID             int         `json:"id"`
	State          WorkerState `json:"state"`
	TotalProcessed int64       `json:"total_processed"`
	TotalFailed    int64       `json:"total_failed"`
}
