package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"campaign-sync/internal/core/port"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// ErrDeliveriesClosed is returned by Run when the broker closes the
// delivery channel.
var ErrDeliveriesClosed = errors.New("amqp deliveries closed")

// Handler processes one job.
type Handler interface {
	Process(ctx context.Context, job port.Job) Decision
}

// Consumer takes jobs off the queue one delivery at a time. Retries are
// re-published to the retry queue with a per-message expiration and the
// original delivery is acknowledged.
type Consumer struct {
	ch        Channel
	queue     string
	prefetch  int
	handler   Handler
	publisher *Publisher
	logger    *slog.Logger
}

// NewConsumer creates a consumer for the named job queue.
func NewConsumer(ch Channel, queue string, prefetch int, handler Handler, logger *slog.Logger) *Consumer {
	if prefetch < 1 {
		prefetch = 1
	}
	return &Consumer{
		ch:        ch,
		queue:     queue,
		prefetch:  prefetch,
		handler:   handler,
		publisher: NewPublisher(ch, queue),
		logger:    logger,
	}
}

// Run consumes until ctx is done or the broker closes the channel. A job in
// progress when ctx is cancelled still finishes and is settled.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	tag := "campaign-sync-" + uuid.NewString()
	deliveries, err := c.ch.Consume(c.queue, tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}
	c.logger.Info("worker consuming", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			if err := c.ch.Cancel(tag, false); err != nil {
				c.logger.Warn("cancel consumer", slog.Any("error", err))
			}
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.handle(context.WithoutCancel(ctx), d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var job port.Job
	if err := json.Unmarshal(d.Body, &job); err != nil {
		c.logger.Error("invalid job payload", slog.String("message_id", d.MessageId), slog.Any("error", err))
		c.settle(d.Ack(false))
		return
	}
	if job.Attempt < 1 {
		job.Attempt = 1
	}

	dec := c.handler.Process(ctx, job)
	if dec.Action != ActionRetry {
		c.settle(d.Ack(false))
		return
	}

	job.Attempt++
	if err := c.publisher.publishRetry(job, dec.Delay); err != nil {
		// the broker redelivers and the attempt is repeated
		c.logger.Error("schedule retry", slog.String("job_id", job.ID), slog.Any("error", err))
		c.settle(d.Nack(false, true))
		return
	}
	c.settle(d.Ack(false))
}

func (c *Consumer) settle(err error) {
	if err != nil {
		c.logger.Error("settle delivery", slog.Any("error", err))
	}
}
