// Package rabbitmq publishes committed domain events to a topic exchange.
// The routing key of every message is the event name, e.g. "order.completed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrNack is returned when the broker refuses a message.
var ErrNack = errors.New("publish NACK from broker")

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Close() error
}

// Publisher implements ports.EventPublisher over one AMQP channel.
type Publisher struct {
	ch       Channel
	acks     <-chan amqp.Confirmation
	exchange string
	logger   *zap.Logger
	closer   func() error

	mu sync.Mutex
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Envelope is the JSON body of every published message.
type Envelope struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AggregateID string          `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

// Dial connects to the broker, enables publisher confirms and declares a durable
// topic exchange.
func Dial(url, exchange string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	p, err := NewPublisher(ch, acks, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.closer = conn.Close
	return p, nil
}

// NewPublisher declares the exchange on ch. acks may be nil when confirms are off.
func NewPublisher(ch Channel, acks <-chan amqp.Confirmation, exchange string, logger *zap.Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		ch:       ch,
		acks:     acks,
		exchange: exchange,
		logger:   logger.With(zap.String("component", "event_publisher")),
	}, nil
}

// Publish sends every event as a persistent JSON message and, with confirms on,
// waits for the broker to acknowledge each one. It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		msg, err := newMessage(event)
		if err != nil {
			return err
		}

		if err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, msg); err != nil {
			return fmt.Errorf("publish %s: %w", event.EventName(), err)
		}

		if err = p.awaitConfirm(ctx); err != nil {
			return fmt.Errorf("publish %s: %w", event.EventName(), err)
		}

		p.logger.Debug("event published",
			zap.String("event", event.EventName()),
			zap.String("aggregate_id", event.AggregateID()),
			zap.String("message_id", msg.MessageId),
		)
	}
	return nil
}

// Close closes the channel and, when the publisher owns it, the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.closer != nil {
		err = errors.Join(err, p.closer())
	}
	return err
}

func (p *Publisher) awaitConfirm(ctx context.Context) error {
	if p.acks == nil {
		return nil
	}
	select {
	case conf, ok := <-p.acks:
		if !ok {
			return amqp.ErrClosed
		}
		if !conf.Ack {
			return ErrNack
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newMessage(event kernel.DomainEvent) (amqp.Publishing, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	envelope := Envelope{
		ID:          uuid.NewString(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC(),
		Payload:     payload,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal envelope: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     envelope.ID,
		CorrelationId: envelope.AggregateID,
		Type:          envelope.Name,
		Timestamp:     envelope.OccurredAt,
		Body:          body,
	}, nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, ...kernel.DomainEvent) error { return nil }
