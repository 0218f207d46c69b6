package queue

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Channel is the subset of *amqp.Channel used by the publisher and consumer.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RetryQueue returns the name of the parking queue for delayed retries.
func RetryQueue(name string) string { return name + ".retry" }

// Declare declares the job queue and its retry queue. Messages in the retry
// queue have no consumer; when their expiration passes they are dead-lettered
// back to the job queue through the default exchange.
func Declare(ch Channel, name string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": name,
	}
	if _, err := ch.QueueDeclare(RetryQueue(name), true, false, false, false, args); err != nil {
		return fmt.Errorf("declare queue %s: %w", RetryQueue(name), err)
	}
	return nil
}

// Dial connects to RabbitMQ, opens a channel and declares the queues.
func Dial(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := Declare(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
