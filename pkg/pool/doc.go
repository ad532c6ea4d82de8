/*
Package pool provides a fixed-size worker pool: a reusable set of
background goroutines that accept and run arbitrary units of work
submitted by a producer.

# Overview

A Pool owns N workers sharing one unbounded job queue. Each worker
repeatedly claims the next queued job and runs it to completion before
claiming another. The pool size is fixed for the pool's lifetime:
workers are spawned eagerly at construction and joined at Close, with
no mid-life replacement.

# Core Components

## Pool

Owns the workers and the sending side of the job queue:
  - Fire-and-forget job submission that never blocks the producer
  - Graceful shutdown that drains in-flight work and joins every worker
  - Basic and per-worker statistics, optional Prometheus metrics

## Worker

A single long-lived goroutine:
  - Claims exactly one job at a time from the shared queue
  - Holds the claim lock only while claiming, never while running a job
  - Recovers panicking jobs and terminates itself, leaving the pool
    running with one fewer worker

## Job

A one-shot unit of work. FuncJob adapts a plain closure; anything
implementing the Job interface can be submitted.

# Delivery Guarantees

Submission is at-most-once: every successfully enqueued job is claimed
by exactly one worker, and a job rejected at submission is never
partially executed. Claim order is FIFO, but no guarantee is made about
completion order or about which worker handles a given job. There is no
cancellation after submission and no backpressure.

# Error Handling

Construction failures (zero size) return a CreationError and are fatal
to startup. Submission failures return a SendError wrapping
ErrPoolClosed or ErrNoWorkers; they affect only that job. A panic inside
a job is isolated to its claiming worker: the worker is lost for the
remainder of the pool's life and the fault is reported again by Close.

# Usage

	p, err := pool.New(&pool.Config{Size: 4})
	if err != nil {
		log.Fatal(err)
	}

	if err := p.SubmitFunc(func() {
		// do work
	}); err != nil {
		log.Printf("failed to submit job: %v", err)
	}

	if err := p.Close(); err != nil {
		log.Printf("shutdown reported worker faults: %v", err)
	}
*/
package pool
