// Package rabbitmq publishes parcel lifecycle events to a topic exchange.
// The routing key is the event type, so consumers bind with patterns such as
// "parcel.*" or "parcel.delivered".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/pkg/errs"

	"github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "parcel_events"

// Message is the JSON body of a published event.
type Message struct {
	Type           string    `json:"type"`
	ParcelID       string    `json:"parcelId"`
	TrackingID     string    `json:"trackingId"`
	PaymentStatus  string    `json:"paymentStatus"`
	DeliveryStatus string    `json:"deliveryStatus"`
	RiderEmail     string    `json:"riderEmail,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewMessage(e parcel.Event) Message {
	return Message{
		Type:           string(e.Type),
		ParcelID:       e.ParcelID.String(),
		TrackingID:     e.TrackingID,
		PaymentStatus:  e.PaymentStatus.String(),
		DeliveryStatus: e.DeliveryStatus.String(),
		RiderEmail:     e.RiderEmail,
		OccurredAt:     e.OccurredAt,
	}
}

// Publisher owns one connection and one channel. A channel must not be used
// by two goroutines at once, hence the mutex.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

// Dial connects to the broker and declares the exchange as a durable topic.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("RABBITMQ_URL")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "event_publisher"),
	}, nil
}

// Publish sends every event and reports the ones that failed.
func (p *Publisher) Publish(ctx context.Context, events []parcel.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var failures []error
	for _, e := range events {
		body, err := json.Marshal(NewMessage(e))
		if err != nil {
			failures = append(failures, fmt.Errorf("marshal %s: %w", e.Type, err))
			continue
		}

		err = p.ch.PublishWithContext(ctx,
			p.exchange,
			string(e.Type),
			false, // mandatory
			false, // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Timestamp:    e.OccurredAt,
				Type:         string(e.Type),
				Body:         body,
			},
		)
		if err != nil {
			failures = append(failures, fmt.Errorf("publish %s for parcel %s: %w", e.Type, e.ParcelID, err))
			continue
		}
		p.logger.DebugContext(ctx, "published parcel event", "type", e.Type, "parcel_id", e.ParcelID.String())
	}
	return errors.Join(failures...)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.ch.Close(), p.conn.Close())
}
