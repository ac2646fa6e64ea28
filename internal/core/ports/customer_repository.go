package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository provides read access to the customer replica.
// Order creation verifies the customer exists before accepting the order.
type CustomerRepository interface {
	// Get retrieves a customer by identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
