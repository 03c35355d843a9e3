package workers

import (
	"context"
)

// Job is a unit of work handed to a JobProcessor. ID must be stable across
// polls so a job that is still running is not picked up twice.
type Job struct {
	ID   string
	Type string
}

// JobProcessor handles jobs pulled by a Poller.
// Implementations should be idempotent as a failed job is offered again on the next poll.
type JobProcessor interface {
	// Process handles a single job.
	Process(ctx context.Context, job Job) error

	// Name returns the processor name for logging.
	Name() string
}

// JobSource returns pending jobs, oldest first
type JobSource interface {
	Fetch(ctx context.Context, limit int) ([]Job, error)
}

// Consumer pulls jobs from a source and distributes them to a worker pool.
type Consumer interface {
	// Start polls until Stop is called.
	Start(ctx context.Context) error

	// Stop shuts down the consumer, draining in-flight jobs.
	Stop()
}

// WorkerPool defines the interface for managing a pool of job workers.
type WorkerPool interface {
	// Start initializes the worker pool with N workers.
	Start(ctx context.Context) error

	// Submit adds a job to the worker pool. Blocks if the queue is full.
	Submit(ctx context.Context, job Job) error

	// Drain stops accepting new jobs and waits for in-flight jobs to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
