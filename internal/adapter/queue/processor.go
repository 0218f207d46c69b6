// Package queue runs sync and reconcile jobs delivered over RabbitMQ.
// Processor holds the retry policy and knows nothing about the transport.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campaign-sync/internal/core/backoff"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"
)

// Job is the JSON message carried by the queue.
type Job = port.Job

// Action is what the transport should do with a job after processing.
type Action string

const (
	ActionAck   Action = "ack"
	ActionRetry Action = "retry"
	ActionDrop  Action = "drop"
)

// Decision is the outcome of processing one job.
type Decision struct {
	Action Action
	// Delay is set for ActionRetry.
	Delay time.Duration
	// Err explains retries and drops.
	Err error
}

// ErrInvalidJob is reported for jobs that can never succeed as sent.
var ErrInvalidJob = errors.New("invalid job")

// Processor executes jobs against the use cases. Attempt numbers start at 1;
// a job is retried while its attempt is below the configured maximum.
type Processor struct {
	sync        port.SyncUseCase
	reconcile   port.ReconcileUseCase
	backoff     backoff.Config
	maxAttempts int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithBackoff sets the retry delay configuration.
func WithBackoff(cfg backoff.Config) ProcessorOption {
	return func(p *Processor) { p.backoff = cfg }
}

// WithMaxAttempts caps the number of attempts per job.
func WithMaxAttempts(n int) ProcessorOption {
	return func(p *Processor) { p.maxAttempts = n }
}

// WithProcessorMetrics sets the metrics collectors.
func WithProcessorMetrics(m *metrics.Metrics) ProcessorOption {
	return func(p *Processor) { p.metrics = m }
}

// WithProcessorLogger sets the logger.
func WithProcessorLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = l }
}

// NewProcessor creates a job processor.
func NewProcessor(sync port.SyncUseCase, reconcile port.ReconcileUseCase, opts ...ProcessorOption) *Processor {
	p := &Processor{
		sync:        sync,
		reconcile:   reconcile,
		backoff:     backoff.DefaultConfig(),
		maxAttempts: 5,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the job and decides its fate.
func (p *Processor) Process(ctx context.Context, job port.Job) Decision {
	if job.Attempt < 1 {
		job.Attempt = 1
	}
	logger := p.logger.With(
		slog.String("job_id", job.ID),
		slog.String("kind", string(job.Kind)),
		slog.Int("attempt", job.Attempt),
	)

	var d Decision
	switch job.Kind {
	case port.JobSync:
		d = p.processSync(ctx, job)
	case port.JobReconcile:
		d = p.processReconcile(ctx, job)
	default:
		d = Decision{Action: ActionDrop, Err: ErrInvalidJob}
	}

	p.metrics.JobHandled(string(job.Kind), string(d.Action))
	switch d.Action {
	case ActionAck:
		logger.Info("job done")
	case ActionRetry:
		logger.Warn("job will be retried", slog.Duration("delay", d.Delay), slog.Any("error", d.Err))
	case ActionDrop:
		logger.Error("job dropped", slog.Any("error", d.Err))
	}
	return d
}

func (p *Processor) processSync(ctx context.Context, job port.Job) Decision {
	if job.CampaignSetID == "" {
		return Decision{Action: ActionDrop, Err: ErrInvalidJob}
	}
	res, err := p.sync.SyncCampaignSet(ctx, job.CampaignSetID)
	if errors.Is(err, port.ErrCampaignSetNotFound) {
		return Decision{Action: ActionDrop, Err: err}
	}
	if err != nil {
		return p.retry(job, 0, err)
	}
	if retryable, after := res.RetryHint(); retryable {
		return p.retry(job, after, &FailuresError{Failed: res.Failed, Total: res.Total()})
	}
	return Decision{Action: ActionAck}
}

func (p *Processor) processReconcile(ctx context.Context, job port.Job) Decision {
	if job.AccountID == "" {
		return Decision{Action: ActionDrop, Err: ErrInvalidJob}
	}
	if _, err := p.reconcile.ReconcileAccount(ctx, job.AccountID); err != nil {
		return p.retry(job, 0, err)
	}
	return Decision{Action: ActionAck}
}

// retry schedules another attempt unless the job has used them all. The delay
// honours the largest retry-after hint of the failed run.
func (p *Processor) retry(job port.Job, after time.Duration, cause error) Decision {
	if job.Attempt >= p.maxAttempts {
		return Decision{Action: ActionDrop, Err: &ExhaustedError{Attempts: job.Attempt, Err: cause}}
	}
	delay := max(backoff.CalculateDelay(job.Attempt-1, p.backoff), after)
	return Decision{Action: ActionRetry, Delay: delay, Err: cause}
}
