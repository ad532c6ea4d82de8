package pool

import (
	"sync"

	"hellopool/pkg/types"
)

// jobQueue is the shared receiving end of the dispatch channel: an
// unbounded FIFO whose mutex serializes the claim step so exactly one
// worker inspects the next job at a time. Enqueueing never blocks the
// submitter.
type jobQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []types.Job
	closed bool
}

func newJobQueue() *jobQueue {
	q := &jobQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push enqueues a job. Returns false when the queue has been closed;
// the job is dropped in that case.
func (q *jobQueue) push(job types.Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.jobs = append(q.jobs, job)
	q.cond.Signal()
	return true
}

// pop blocks until a job can be claimed or the queue is closed and
// drained. The lock is held only for the claim itself, never while the
// caller runs the job. Returns false once no job will ever arrive.
func (q *jobQueue) pop() (types.Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.jobs) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.jobs) == 0 {
		return nil, false
	}

	job := q.jobs[0]
	q.jobs[0] = nil
	q.jobs = q.jobs[1:]
	return job, true
}

// close marks the queue closed and wakes every blocked worker. Jobs
// already queued are still handed out before pop reports closure.
func (q *jobQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// len returns the number of jobs waiting to be claimed
func (q *jobQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
