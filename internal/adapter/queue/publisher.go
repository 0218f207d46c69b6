package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"campaign-sync/internal/core/port"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const contentType = "application/json"

// Publisher enqueues jobs. It implements port.JobPublisher.
type Publisher struct {
	mu    sync.Mutex
	ch    Channel
	queue string
	now   func() time.Time
}

var _ port.JobPublisher = (*Publisher)(nil)

// NewPublisher returns a publisher for the named job queue.
func NewPublisher(ch Channel, queue string) *Publisher {
	return &Publisher{ch: ch, queue: queue, now: time.Now}
}

// Publish sends the job to the job queue. Missing ids and attempts are
// filled in.
func (p *Publisher) Publish(ctx context.Context, job port.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Attempt < 1 {
		job.Attempt = 1
	}
	return p.publish(p.queue, job, 0)
}

// publishRetry parks the job in the retry queue for delay.
func (p *Publisher) publishRetry(job port.Job, delay time.Duration) error {
	return p.publish(RetryQueue(p.queue), job, delay)
}

func (p *Publisher) publish(queue string, job port.Job, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    job.ID,
		Timestamp:    p.now(),
		Type:         string(job.Kind),
		Body:         body,
	}
	if delay > 0 {
		msg.Expiration = strconv.FormatInt(delay.Milliseconds(), 10)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Publish("", queue, false, false, msg); err != nil {
		return fmt.Errorf("publish job %s: %w", job.ID, err)
	}
	return nil
}
