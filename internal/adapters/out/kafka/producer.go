// Package kafka publishes order lifecycle events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// TopicOrderStatusChanged carries every order status transition, including
// the initial RECEIVED state on placement.
const TopicOrderStatusChanged = "fooddelivery.order.status-changed"

// OrderStatusChangedEvent is the wire payload for status transitions.
type OrderStatusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	Customer    string    `json:"customer_name"`
	OccurredAt  time.Time `json:"occurred_at"`
	PublishedAt time.Time `json:"published_at"`
}

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers      []string
	BatchSize    int
	BatchTimeout time.Duration
}

// DefaultProducerConfig returns sensible defaults for the Kafka producer.
func DefaultProducerConfig(brokers []string) ProducerConfig {
	return ProducerConfig{
		Brokers:      brokers,
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// Producer publishes order events using a kafka-go writer.
type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewProducer creates a Kafka-backed order event publisher.
func NewProducer(cfg ProducerConfig, logger *slog.Logger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        TopicOrderStatusChanged,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{
		writer: w,
		logger: logger,
	}
}

// PublishStatusChanged emits the order's current status. Messages are keyed by
// order ID so all transitions of one order land on the same partition in order.
func (p *Producer) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderStatusChangedEvent{
		OrderID:     aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		TotalCents:  aggregate.TotalAmount().Cents(),
		Customer:    aggregate.Customer().Name(),
		OccurredAt:  aggregate.UpdatedAt(),
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.status_changed")},
			{Key: "source", Value: []byte("fooddelivery")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", TopicOrderStatusChanged),
			slog.String("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
		return errs.NewUpstreamFailureError("publish order status event", err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("topic", TopicOrderStatusChanged),
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
	)

	return nil
}

// Close flushes pending messages and releases the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
