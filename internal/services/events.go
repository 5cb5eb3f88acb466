package services

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventRequestCreated = "donation.request.created"
	EventStatusChanged  = "donation.status.changed"
)

// LifecycleEvent is published whenever a donation request is created or
// moves through its lifecycle. Downstream consumers (mailers, dashboards)
// subscribe on the exchange; this service never waits for them.
type LifecycleEvent struct {
	Type           string    `json:"type"`
	DonationID     string    `json:"donationId"`
	RequesterEmail string    `json:"requesterEmail,omitempty"`
	BloodGroup     string    `json:"bloodGroup,omitempty"`
	District       string    `json:"district,omitempty"`
	DonationStatus string    `json:"donationStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, ev LifecycleEvent) error
	Close() error
}

// --- AMQP implementation ---

const lifecycleExchange = "donation.events"

type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(lifecycleExchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev LifecycleEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, lifecycleExchange, ev.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	return p.conn.Close()
}

// --- no-op implementation for AMQP-less deployments ---

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, LifecycleEvent) error { return nil }
func (NoopPublisher) Close() error                                  { return nil }
