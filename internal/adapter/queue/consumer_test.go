package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"campaign-sync/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/streadway/amqp"
)

type published struct {
	queue string
	msg   amqp.Publishing
}

type fakeChannel struct {
	mu         sync.Mutex
	deliveries chan amqp.Delivery
	declared   map[string]amqp.Table
	published  []published
	cancelled  bool
	publishErr error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{deliveries: make(chan amqp.Delivery, 8), declared: map[string]amqp.Table{}}
}

func (f *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declared[name] = args
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) Qos(int, int, bool) error { return nil }

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Cancel(string, bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = true
	return nil
}

func (f *fakeChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{queue: key, msg: msg})
	return nil
}

func (f *fakeChannel) sent() []published {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]published(nil), f.published...)
}

// acker records how a delivery was settled.
type acker struct {
	mu      sync.Mutex
	acked   []uint64
	nacked  []uint64
	settled chan struct{}
}

func newAcker() *acker { return &acker{settled: make(chan struct{}, 8)} }

func (a *acker) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	a.acked = append(a.acked, tag)
	a.mu.Unlock()
	a.settled <- struct{}{}
	return nil
}

func (a *acker) Nack(tag uint64, _, _ bool) error {
	a.mu.Lock()
	a.nacked = append(a.nacked, tag)
	a.mu.Unlock()
	a.settled <- struct{}{}
	return nil
}

func (a *acker) Reject(tag uint64, requeue bool) error { return a.Nack(tag, false, requeue) }

func (a *acker) wait(t *testing.T) {
	t.Helper()
	select {
	case <-a.settled:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery not settled")
	}
}

type handlerFunc func(context.Context, port.Job) Decision

func (f handlerFunc) Process(ctx context.Context, job port.Job) Decision { return f(ctx, job) }

func delivery(t *testing.T, a *acker, tag uint64, job port.Job) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(job)
	require.NoError(t, err)
	return amqp.Delivery{Acknowledger: a, DeliveryTag: tag, Body: body}
}

func runConsumer(t *testing.T, c *Consumer) (cancel func() error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	return func() error {
		stop()
		return <-done
	}
}

// TestDeclare ensures the work queue and its dead-lettering retry queue are declared.
func TestDeclare(t *testing.T) {
	ch := newFakeChannel()
	require.NoError(t, Declare(ch, "jobs"))

	assert.Contains(t, ch.declared, "jobs")
	assert.Equal(t, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": "jobs",
	}, ch.declared["jobs.retry"])
}

// TestPublisherPublish ensures jobs are published as persistent json messages.
func TestPublisherPublish(t *testing.T) {
	ch := newFakeChannel()
	p := NewPublisher(ch, "jobs")

	require.NoError(t, p.Publish(context.Background(), port.Job{Kind: port.JobSync, CampaignSetID: "s1"}))

	sent := ch.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "jobs", sent[0].queue)
	assert.Equal(t, amqp.Persistent, sent[0].msg.DeliveryMode)
	assert.Empty(t, sent[0].msg.Expiration)

	var job port.Job
	require.NoError(t, json.Unmarshal(sent[0].msg.Body, &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, job.ID, sent[0].msg.MessageId)
	assert.Equal(t, 1, job.Attempt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, port.Job{}), context.Canceled)
}

// TestConsumerAcksAndRetries ensures deliveries are acked or republished to the retry queue.
func TestConsumerAcksAndRetries(t *testing.T) {
	ch := newFakeChannel()
	a := newAcker()
	var seen []port.Job
	var mu sync.Mutex
	h := handlerFunc(func(_ context.Context, job port.Job) Decision {
		mu.Lock()
		seen = append(seen, job)
		mu.Unlock()
		if job.CampaignSetID == "flaky" {
			return Decision{Action: ActionRetry, Delay: 1500 * time.Millisecond}
		}
		return Decision{Action: ActionAck}
	})
	c := NewConsumer(ch, "jobs", 1, h, quiet)
	stop := runConsumer(t, c)

	ch.deliveries <- delivery(t, a, 1, port.Job{ID: "a", Kind: port.JobSync, CampaignSetID: "ok"})
	a.wait(t)
	ch.deliveries <- delivery(t, a, 2, port.Job{ID: "b", Kind: port.JobSync, CampaignSetID: "flaky", Attempt: 2})
	a.wait(t)
	ch.deliveries <- amqp.Delivery{Acknowledger: a, DeliveryTag: 3, Body: []byte("{not json")}
	a.wait(t)

	assert.ErrorIs(t, stop(), context.Canceled)
	assert.True(t, ch.cancelled)
	assert.Equal(t, []uint64{1, 2, 3}, a.acked)

	sent := ch.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "jobs.retry", sent[0].queue)
	assert.Equal(t, "1500", sent[0].msg.Expiration)
	var retried port.Job
	require.NoError(t, json.Unmarshal(sent[0].msg.Body, &retried))
	assert.Equal(t, 3, retried.Attempt)
	assert.Equal(t, "b", retried.ID)
	assert.Len(t, seen, 2)
}

// TestConsumerRequeuesWhenRetryCannotBeScheduled ensures a delivery is requeued when the retry publish fails.
func TestConsumerRequeuesWhenRetryCannotBeScheduled(t *testing.T) {
	ch := newFakeChannel()
	ch.publishErr = errors.New("channel closed")
	a := newAcker()
	h := handlerFunc(func(context.Context, port.Job) Decision {
		return Decision{Action: ActionRetry, Delay: time.Second}
	})
	stop := runConsumer(t, NewConsumer(ch, "jobs", 1, h, quiet))

	ch.deliveries <- delivery(t, a, 7, port.Job{ID: "x", Kind: port.JobSync, CampaignSetID: "s"})
	a.wait(t)
	require.ErrorIs(t, stop(), context.Canceled)

	assert.Empty(t, a.acked)
	assert.Equal(t, []uint64{7}, a.nacked)
}

// TestConsumerStopsWhenDeliveriesClose ensures Run returns when the delivery channel closes.
func TestConsumerStopsWhenDeliveriesClose(t *testing.T) {
	ch := newFakeChannel()
	close(ch.deliveries)
	c := NewConsumer(ch, "jobs", 0, handlerFunc(func(context.Context, port.Job) Decision {
		return Decision{Action: ActionAck}
	}), quiet)

	assert.ErrorIs(t, c.Run(context.Background()), ErrDeliveriesClosed)
}
