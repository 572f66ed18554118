// Package messaging forwards budget change events to a message broker.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	exchangeKind   = "topic"
	publishTimeout = 5 * time.Second
	// DefaultQueueSize bounds how many events may wait for the broker
	DefaultQueueSize = 256
)

// ErrPublisherClosed is returned by Run after Close
var ErrPublisherClosed = errors.New("publisher is closed")

// Channel is the subset of *amqp091.Channel the publisher needs
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher implements websocket.EventPublisher by queueing events and
// publishing them from a single worker, routed by event type (e.g.
// "transaction.created"). Publish never blocks the caller; events are dropped
// with a warning when the queue is full.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  Channel
	exchange string
	queue    chan websocket.Event
	done     chan struct{}
}

var _ websocket.EventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares a durable topic exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,     // name
		exchangeKind, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p := NewAMQPPublisherWithChannel(channel, exchange, DefaultQueueSize)
	p.conn = conn
	return p, nil
}

// NewAMQPPublisherWithChannel builds a publisher on an already open channel
func NewAMQPPublisherWithChannel(channel Channel, exchange string, queueSize int) *AMQPPublisher {
	return &AMQPPublisher{
		channel:  channel,
		exchange: exchange,
		queue:    make(chan websocket.Event, queueSize),
		done:     make(chan struct{}),
	}
}

// Publish queues the event for delivery
func (p *AMQPPublisher) Publish(event websocket.Event) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.queue <- event:
	default:
		log.Warn().
			Str("event_type", event.Type).
			Str("exchange", p.exchange).
			Msg("AMQP publish queue full, dropping event")
	}
}

// Run delivers queued events until ctx is cancelled or Close is called.
// Delivery failures are logged and do not stop the worker.
func (p *AMQPPublisher) Run(ctx context.Context) error {
	log.Info().Str("exchange", p.exchange).Msg("AMQP publisher started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.done:
			return ErrPublisherClosed
		case event := <-p.queue:
			if err := p.deliver(ctx, event); err != nil {
				log.Error().Err(err).
					Str("event_type", event.Type).
					Str("exchange", p.exchange).
					Msg("Failed to publish budget event")
			}
		}
	}
}

func (p *AMQPPublisher) deliver(ctx context.Context, event websocket.Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    event.Timestamp,
			Type:         event.Type,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Close stops the worker and closes the broker connection
func (p *AMQPPublisher) Close() error {
	select {
	case <-p.done:
		return nil
	default:
		close(p.done)
	}

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
