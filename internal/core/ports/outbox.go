package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event stored in the same transaction
// as the aggregate change that produced it. A relay job later drains
// unpublished messages to the message broker, giving at-least-once delivery.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	OrderID     kernel.UUID
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository defines the persistence contract for outbox messages.
type OutboxRepository interface {
	// Add stores a new outbox message. Must be called within the same
	// transaction that persists the aggregate change.
	Add(ctx context.Context, message OutboxMessage) error

	// GetUnpublished retrieves up to limit messages that have not been
	// published yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records the time a message was delivered to the broker.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}

// EventPublisher delivers serialized domain events to the message broker.
type EventPublisher interface {
	// Publish sends a single message to the broker. Delivery is keyed by
	// order ID so events of one order stay in order.
	Publish(ctx context.Context, message OutboxMessage) error
}
