package workers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"boatshow-server/internal/observability"
)

// PollerConfig holds configuration for a polling consumer.
type PollerConfig struct {
	// Interval is the time between two fetches from the source.
	Interval time.Duration

	// BatchSize is the maximum number of jobs fetched per poll.
	BatchSize int

	// NumWorkers is the number of concurrent workers.
	NumWorkers int

	// QueueSize is the buffer size for the job channel.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight jobs during shutdown.
	DrainTimeout time.Duration

	// JobTimeout bounds a single job. Zero means no limit.
	JobTimeout time.Duration
}

// DefaultPollerConfig returns sensible defaults for a poller.
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		Interval:     30 * time.Second,
		BatchSize:    50,
		NumWorkers:   4,
		QueueSize:    100,
		DrainTimeout: 30 * time.Second,
	}
}

// poller implements Consumer by fetching from a JobSource on a ticker.
type poller struct {
	config    PollerConfig
	source    JobSource
	processor JobProcessor
	pool      WorkerPool
	logger    *observability.Logger

	// IDs submitted to the pool and not yet finished
	mu       sync.Mutex
	inFlight map[string]struct{}

	// Lifecycle management
	cancelPoll context.CancelFunc
	started    bool
	doneCh     chan struct{}
	stopping   atomic.Bool
	stopOnce   sync.Once
}

// NewPoller creates a consumer that feeds jobs from source to processor.
func NewPoller(
	config PollerConfig,
	source JobSource,
	processor JobProcessor,
	logger *observability.Logger,
) Consumer {
	defaults := DefaultPollerConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	p := &poller{
		config:    config,
		source:    source,
		processor: processor,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
		doneCh:    make(chan struct{}),
	}
	p.pool = NewWorkerPool(WorkerPoolConfig{
		NumWorkers:   config.NumWorkers,
		QueueSize:    config.QueueSize,
		DrainTimeout: config.DrainTimeout,
		JobTimeout:   config.JobTimeout,
		OnResult: func(result ProcessingResult) {
			p.release(result.Job.ID)
		},
	}, processor, logger)

	return p
}

// Start polls the source until Stop is called or ctx is cancelled.
// Workers always finish the job they are running.
func (p *poller) Start(ctx context.Context) error {
	defer close(p.doneCh)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "processor", Value: p.processor.Name()},
		observability.Field{Key: "poll_interval", Value: p.config.Interval.String()},
	)

	p.mu.Lock()
	if p.stopping.Load() {
		p.mu.Unlock()
		return nil
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancelPoll = cancel
	p.started = true
	p.mu.Unlock()
	defer cancel()

	if err := p.pool.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("Starting poller for %s with %d workers",
		p.processor.Name(), p.config.NumWorkers))

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	p.poll(pollCtx)
	for {
		select {
		case <-pollCtx.Done():
			if err := p.pool.Drain(context.WithoutCancel(ctx)); err != nil {
				p.logger.Warn(ctx, "Drain timeout - some jobs may not have completed")
			}
			p.logger.Info(ctx, fmt.Sprintf("Poller stopped for %s", p.processor.Name()))
			return nil
		case <-ticker.C:
			p.poll(pollCtx)
		}
	}
}

// poll fetches one batch and submits every job that is not already running.
func (p *poller) poll(ctx context.Context) {
	if p.stopping.Load() {
		return
	}

	jobs, err := p.source.Fetch(ctx, p.config.BatchSize)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error(ctx, "Failed to fetch jobs", err)
		}
		return
	}

	submitted := 0
	for _, job := range jobs {
		if !p.claim(job.ID) {
			continue
		}
		if err := p.pool.Submit(ctx, job); err != nil {
			p.release(job.ID)
			if ctx.Err() == nil {
				p.logger.Error(ctx, "Failed to submit job", err)
			}
			return
		}
		submitted++
	}

	if submitted > 0 {
		ctx = observability.WithFields(ctx, observability.Field{Key: "jobs", Value: submitted})
		p.logger.Info(ctx, "Submitted jobs to worker pool")
	}
}

func (p *poller) claim(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, running := p.inFlight[id]; running {
		return false
	}
	p.inFlight[id] = struct{}{}
	return true
}

func (p *poller) release(id string) {
	p.mu.Lock()
	delete(p.inFlight, id)
	p.mu.Unlock()
}

// Stop stops polling and returns once in-flight jobs have drained.
func (p *poller) Stop() {
	p.stopOnce.Do(func() {
		logCtx := observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: p.processor.Name()},
		)
		p.logger.Info(logCtx, fmt.Sprintf("Stopping poller for %s", p.processor.Name()))

		p.mu.Lock()
		p.stopping.Store(true)
		started := p.started
		if p.cancelPoll != nil {
			p.cancelPoll()
		}
		p.mu.Unlock()

		if started {
			<-p.doneCh
		}
	})
}
