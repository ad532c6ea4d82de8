package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hellopool/pkg/types"
)

// Config defines configuration for the worker pool
type Config struct {
	// Size is the fixed number of workers, at least 1
	Size int

	// ShutdownTimeout bounds how long Close waits for workers to exit.
	// Zero means wait indefinitely.
	ShutdownTimeout time.Duration

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock

	// ErrorHandler is invoked for faults recovered inside jobs
	ErrorHandler types.ErrorHandler

	// Metrics enables Prometheus instrumentation when non-nil
	Metrics *Metrics
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Size:  4,
		Clock: types.NewRealClock(),
	}
}

// Pool is a fixed-size worker pool. Workers are spawned eagerly at
// construction and live until Close; there is no mid-life replacement.
type Pool struct {
	config  *Config
	workers []*Worker
	queue   *jobQueue

	live   int32 // workers that have not terminated
	closed int32 // set when shutdown begins

	closeOnce sync.Once
	closeErr  error
}

var _ types.Pool = (*Pool)(nil)

// New builds a pool of config.Size workers sharing one unbounded job
// queue. All workers are started immediately. A nil config uses
// DefaultConfig. A non-positive size fails with CreationError; no
// partial pool is returned and no goroutines are spawned.
func New(config *Config) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if config.Size <= 0 {
		return nil, types.NewCreationError(fmt.Sprintf("pool size must be positive, got %d", config.Size))
	}

	if config.Clock == nil {
		config.Clock = types.NewRealClock()
	}

	p := &Pool{
		config:  config,
		workers: make([]*Worker, config.Size),
		queue:   newJobQueue(),
		live:    int32(config.Size),
	}

	for i := 0; i < config.Size; i++ {
		worker := newWorker(i, p.queue, config.Clock)
		worker.errorHandler = config.ErrorHandler
		worker.metrics = config.Metrics
		worker.onExit = func() {
			atomic.AddInt32(&p.live, -1)
			if config.Metrics != nil {
				config.Metrics.LiveWorkers.Dec()
			}
		}
		p.workers[i] = worker
		go worker.run()
	}

	if config.Metrics != nil {
		config.Metrics.LiveWorkers.Add(float64(config.Size))
	}

	return p, nil
}

// Submit enqueues a job for the next available worker to claim. It is
// fire-and-forget: the call never blocks waiting for execution and the
// queue accepts unboundedly. No guarantee is made about which worker
// runs the job or in what order jobs complete; each successfully
// enqueued job is claimed by exactly one worker.
//
// The liveness check races with worker termination: if the last worker
// panics between the check and the enqueue, the job is accepted but
// never claimed. Submissions after that point fail with ErrNoWorkers.
func (p *Pool) Submit(job types.Job) error {
	if job == nil {
		return types.NewSendError("nil job", types.ErrNilJob)
	}
	if atomic.LoadInt32(&p.closed) == 1 {
		return types.NewSendError("pool has begun shutdown", types.ErrPoolClosed)
	}
	if atomic.LoadInt32(&p.live) == 0 {
		return types.NewSendError("every worker has terminated", types.ErrNoWorkers)
	}

	if !p.queue.push(job) {
		return types.NewSendError("pool has begun shutdown", types.ErrPoolClosed)
	}

	if p.config.Metrics != nil {
		p.config.Metrics.JobsSubmitted.Inc()
	}
	return nil
}

// SubmitFunc enqueues a plain closure as a job
func (p *Pool) SubmitFunc(fn func()) error {
	return p.Submit(NewFuncJob(fn))
}

// Close stops job intake, signals workers by closing the queue and
// waits for every worker to drain its current job and exit. Workers
// that terminated on a panicked job surface their faults here, joined
// into one error; shutdown still waits for the remaining workers rather
// than aborting on the first fault. Close is idempotent and returns the
// same result on repeated calls.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		atomic.StoreInt32(&p.closed, 1)
		p.queue.close()
		p.closeErr = p.join()
	})
	return p.closeErr
}

// join waits for all workers and collects their faults. With a
// configured ShutdownTimeout the wait is bounded by a single timer
// shared across workers.
func (p *Pool) join() error {
	var timeout <-chan time.Time
	if d := p.config.ShutdownTimeout; d > 0 {
		timer := p.config.Clock.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C()
	}

	var faults []error
	for _, worker := range p.workers {
		select {
		case <-worker.Done():
			if fault := worker.Fault(); fault != nil {
				faults = append(faults, fault)
			}
		case <-timeout:
			return types.ErrShutdownTimeout
		}
	}
	return errors.Join(faults...)
}

// Size returns the fixed pool size
func (p *Pool) Size() int {
	return p.config.Size
}

// IsClosed checks if the pool has begun shutdown
func (p *Pool) IsClosed() bool {
	return atomic.LoadInt32(&p.closed) == 1
}

// QueueLength gets the number of jobs waiting to be claimed
func (p *Pool) QueueLength() int {
	return p.queue.len()
}

// Stats gets basic pool statistics
func (p *Pool) Stats() types.PoolStats {
	var busy int
	for _, worker := range p.workers {
		if worker.State() == WorkerStateRunning {
			busy++
		}
	}

	return types.PoolStats{
		Size:        p.config.Size,
		LiveWorkers: int(atomic.LoadInt32(&p.live)),
		BusyWorkers: busy,
		QueuedJobs:  p.queue.len(),
	}
}

// WorkerStats gets statistics of all workers
func (p *Pool) WorkerStats() []WorkerStats {
	stats := make([]WorkerStats, len(p.workers))
	for i, worker := range p.workers {
		stats[i] = worker.Stats()
	}
	return stats
}
