package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends domain events as JSON to a durable topic exchange.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", cfg.Exchange)
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

// NewPublisherWithChannel publishes on an already declared exchange.
func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
	})
}

func (p *Publisher) PublishBookingSubmitted(ctx context.Context, evt shared.BookingSubmittedEvent) error {
	if err := p.PublishJSON(ctx, shared.TopicBookingSubmitted, evt); err != nil {
		return errs.Wrapf(err, "publish %s", shared.TopicBookingSubmitted)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops events. Used when AMQP_URL is empty.
type NopPublisher struct{}

func (NopPublisher) PublishBookingSubmitted(ctx context.Context, evt shared.BookingSubmittedEvent) error {
	slog.Debug("event publishing disabled", "topic", shared.TopicBookingSubmitted, "bookingId", evt.BookingID)
	return nil
}
