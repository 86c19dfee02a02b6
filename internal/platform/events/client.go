package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/ports"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// requeueDelay is the pause before a failed delivery is put back on the queue.
var requeueDelay = 2 * time.Second

// Client publishes and consumes ledger events on a durable direct exchange.
// The queue is bound with its own name as routing key.
type Client struct {
	url          string
	exchangeName string
	queueName    string

	// mu guards conn and channel; an AMQP channel must not be used for concurrent publishes.
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	closed  bool
}

var _ ports.LedgerEventPublisher = (*Client)(nil)

// NewClient dials url and declares the exchange, the queue and their binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	client := &Client{
		url:          url,
		exchangeName: exchangeName,
		queueName:    queueName,
	}
	if err := client.connect(); err != nil {
		return nil, err
	}
	return client, nil
}

// connect dials the broker and replaces conn and channel. The caller holds mu
// or has exclusive access to c.
func (c *Client) connect() error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	c.conn, c.channel = conn, channel
	if err := c.setup(); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("setup exchange and queue: %w", err)
	}
	return nil
}

// KeepAlive re-dials the broker whenever the connection drops, waiting Backoff
// between attempts. It returns when ctx is cancelled or the client is closed.
func (c *Client) KeepAlive(ctx context.Context) {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		lost := c.conn.NotifyClose(make(chan *amqp091.Error, 1))
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case amqpErr := <-lost:
			if amqpErr != nil {
				slog.WarnContext(ctx, "AMQP connection lost, reconnecting", slog.String("error", amqpErr.Error()))
			}
		}

		ok := redial(ctx, func() error {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.closed {
				return nil
			}
			return c.connect()
		}, Backoff)
		if !ok {
			return
		}
		slog.InfoContext(ctx, "AMQP connection re-established", slog.String("exchange", c.exchangeName))
	}
}

// redial calls connect until it succeeds, sleeping wait(attempt) before each try.
// It reports false when ctx is cancelled first.
func redial(ctx context.Context, connect func() error, wait func(int) time.Duration) bool {
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(wait(attempt)):
		}
		err := connect()
		if err == nil {
			return true
		}
		slog.WarnContext(ctx, "AMQP reconnect failed", slog.Int("attempt", attempt+1), slog.String("error", err.Error()))
	}
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishLedgerEvent sends event as a persistent JSON message.
func (c *Client) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	body, err := EncodeLedgerEvent(event)
	if err != nil {
		return fmt.Errorf("marshal ledger event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish ledger event: %w", err)
	}

	slog.DebugContext(ctx, "Published ledger event",
		slog.String("kind", string(event.Kind)),
		slog.Int64("transaction_id", event.TransactionID),
		slog.String("exchange", c.exchangeName))
	return nil
}

// LedgerEventHandler processes one decoded event. A returned error requeues the message.
type LedgerEventHandler func(ctx context.Context, event domain.LedgerEvent) error

// Consume delivers queued events to handler until ctx is cancelled or the
// broker closes the channel. Messages are acknowledged manually.
func (c *Client) Consume(ctx context.Context, handler LedgerEventHandler) error {
	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()

	msgs, err := channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming ledger events", slog.String("queue", c.queueName))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping ledger event consumption", slog.Any("reason", ctx.Err()))
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			handleDelivery(ctx, delivery, handler)
		}
	}
}

// handleDelivery acks on success and drops malformed bodies. A failed delivery is
// requeued once after requeueDelay; a failed redelivery is dropped, since the
// next event or the worker's startup recompute reconciles every budget anyway.
func handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler LedgerEventHandler) {
	event, err := DecodeLedgerEvent(delivery.Body)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to decode ledger event", slog.String("error", err.Error()))
		_ = delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to handle ledger event",
			slog.String("error", err.Error()),
			slog.Int64("transaction_id", event.TransactionID),
			slog.Bool("redelivered", delivery.Redelivered))
		if delivery.Redelivered {
			_ = delivery.Nack(false, false)
			return
		}
		select {
		case <-ctx.Done():
		case <-time.After(requeueDelay):
		}
		_ = delivery.Nack(false, true)
		return
	}

	_ = delivery.Ack(false)
}

// Close releases the channel and the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Backoff returns the wait before reconnect attempt n: 1s doubling up to 30s.
func Backoff(attempt int) time.Duration {
	const maxWait = 30 * time.Second
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= 5 {
		return maxWait
	}
	wait := time.Second << attempt
	if wait > maxWait {
		return maxWait
	}
	return wait
}
