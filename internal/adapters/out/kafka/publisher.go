// Package kafka publishes order domain events to the message broker.
// Messages come from the outbox table, so delivery is at-least-once and
// consumers must deduplicate by event ID.
package kafka

import (
	"context"
	"strings"
	"time"

	"ordering/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
// Events are keyed by order ID so all events of one order land in the same
// partition and keep their relative order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
// The brokers argument is a comma separated list of host:port pairs.
func NewPublisher(brokersCSV, topic string) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends a single outbox message to the broker.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.OrderID.String()),
		Value: message.Payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(message.EventType)},
			{Key: "event-id", Value: []byte(message.ID.String())},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
