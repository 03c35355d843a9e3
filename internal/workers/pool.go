package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"boatshow-server/internal/observability"
)

var (
	ErrPoolNotStarted     = errors.New("worker pool not started")
	ErrPoolAlreadyStarted = errors.New("worker pool already started")
	ErrPoolClosed         = errors.New("worker pool is shutting down")
	ErrDrainTimeout       = errors.New("drain timeout exceeded")
)

// ProcessingResult is reported to OnResult once per submitted job.
type ProcessingResult struct {
	Job      Job
	Error    error
	Duration time.Duration
}

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	NumWorkers int

	// QueueSize buffers submitted jobs. Submit blocks while the buffer is full.
	QueueSize int

	// DrainTimeout bounds how long Drain waits for queued and running jobs.
	DrainTimeout time.Duration

	// JobTimeout bounds a single Process call. Zero means no limit.
	JobTimeout time.Duration

	OnResult func(result ProcessingResult)
}

type poolState int

const (
	poolIdle poolState = iota
	poolRunning
	poolClosed
)

type pool struct {
	config    WorkerPoolConfig
	processor JobProcessor
	logger    *observability.Logger

	jobs    chan Job
	closing chan struct{}
	wg      sync.WaitGroup

	mu     sync.Mutex
	state  poolState
	cancel context.CancelFunc
}

// NewWorkerPool creates a pool that runs processor on submitted jobs.
func NewWorkerPool(config WorkerPoolConfig, processor JobProcessor, logger *observability.Logger) WorkerPool {
	defaults := DefaultPollerConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		jobs:      make(chan Job, config.QueueSize),
		closing:   make(chan struct{}),
	}
}

func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case poolRunning:
		return ErrPoolAlreadyStarted
	case poolClosed:
		return ErrPoolClosed
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state = poolRunning

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("Started %d workers for %s", p.config.NumWorkers, p.processor.Name()))
	return nil
}

func (p *pool) Submit(ctx context.Context, job Job) error {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	switch state {
	case poolIdle:
		return ErrPoolNotStarted
	case poolClosed:
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		return nil
	case <-p.closing:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain closes the pool to new jobs and waits for queued ones to finish.
func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	switch p.state {
	case poolIdle:
		p.mu.Unlock()
		return ErrPoolNotStarted
	case poolClosed:
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.state = poolClosed
	close(p.closing)
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("Draining %s, %d jobs queued", p.processor.Name(), len(p.jobs)))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(p.config.DrainTimeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s, cancelling running jobs", p.processor.Name()))
		p.cancel()
		return ErrDrainTimeout
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}

// Stop cancels running jobs and drops queued ones.
func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == poolRunning {
		close(p.closing)
	}
	p.state = poolClosed
	if p.cancel != nil {
		p.cancel()
	}
}

// worker runs jobs until the pool closes, finishing whatever is still queued.
func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			p.run(ctx, job)
		case <-p.closing:
			for {
				select {
				case <-ctx.Done():
					return
				case job := <-p.jobs:
					p.run(ctx, job)
				default:
					return
				}
			}
		}
	}
}

func (p *pool) run(ctx context.Context, job Job) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "job_id", Value: job.ID},
		observability.Field{Key: "job_type", Value: job.Type},
	)
	if p.config.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.JobTimeout)
		defer cancel()
	}

	start := time.Now()
	err := p.process(ctx, job)
	if err != nil {
		p.logger.Error(ctx, "failed to process job", err)
	}

	if p.config.OnResult != nil {
		p.config.OnResult(ProcessingResult{Job: job, Error: err, Duration: time.Since(start)})
	}
}

// process converts a panic in the processor into an error so one bad job
// does not take the worker down
func (p *pool) process(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.ID, r)
		}
	}()
	return p.processor.Process(ctx, job)
}
