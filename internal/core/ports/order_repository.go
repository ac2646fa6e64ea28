// Package ports defines the contracts between the ordering domain and
// infrastructure. These interfaces enable dependency inversion: the
// application layer depends on them, the adapters implement them.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be initialized and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and failure messages.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order aggregate by the tracking identifier
	// handed out to the customer at creation time.
	GetByTrackingID(ctx context.Context, trackingID kernel.UUID) (*order.Order, error)
}
