package pool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hellopool/pkg/types"
)

func startWorker(t *testing.T, q *jobQueue) *Worker {
	t.Helper()
	w := newWorker(0, q, types.NewRealClock())
	go w.run()
	return w
}

func waitDone(t *testing.T, w *Worker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not exit")
	}
}

func TestWorker_ProcessesJobs(t *testing.T) {
	q := newJobQueue()
	w := startWorker(t, q)

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		require.True(t, q.push(NewFuncJob(func() { wg.Done() })))
	}
	wg.Wait()

	q.close()
	waitDone(t, w)

	stats := w.Stats()
	assert.Equal(t, int64(3), stats.TotalProcessed)
	assert.Equal(t, int64(0), stats.TotalFailed)
	assert.Nil(t, w.Fault())
}

func TestWorker_ExitsCleanlyOnClose(t *testing.T) {
	q := newJobQueue()
	w := startWorker(t, q)

	q.close()
	waitDone(t, w)

	assert.Equal(t, WorkerStateTerminated, w.State())
	assert.Nil(t, w.Fault())
}

func TestWorker_StateTransitions(t *testing.T) {
	q := newJobQueue()
	w := startWorker(t, q)

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, q.push(NewFuncJob(func() {
		close(started)
		<-release
	})))

	<-started
	assert.Equal(t, WorkerStateRunning, w.State())

	close(release)
	assert.Eventually(t, func() bool {
		return w.State() == WorkerStateIdle
	}, 5*time.Second, time.Millisecond)

	q.close()
	waitDone(t, w)
	assert.Equal(t, WorkerStateTerminated, w.State())
}

func TestWorker_PanicTerminatesWorker(t *testing.T) {
	q := newJobQueue()

	var handled error
	w := newWorker(7, q, types.NewRealClock())
	w.errorHandler = func(err error) error {
		handled = err
		return nil
	}
	go w.run()

	require.True(t, q.push(NewFuncJobWithID("bad-job", func() {
		panic("boom")
	})))

	waitDone(t, w)

	assert.Equal(t, WorkerStateTerminated, w.State())
	require.Error(t, w.Fault())
	assert.Contains(t, w.Fault().Error(), "worker 7")
	assert.Contains(t, w.Fault().Error(), "bad-job")
	assert.Contains(t, w.Fault().Error(), "boom")
	assert.Equal(t, w.Fault(), handled)

	stats := w.Stats()
	assert.Equal(t, int64(1), stats.TotalFailed)
}

func TestWorkerState_String(t *testing.T) {
	assert.Equal(t, "idle", WorkerStateIdle.String())
	assert.Equal(t, "running", WorkerStateRunning.String())
	assert.Equal(t, "terminated", WorkerStateTerminated.String())
	assert.Equal(t, "unknown", WorkerState(99).String())
}
