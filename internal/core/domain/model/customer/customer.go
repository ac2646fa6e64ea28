// Package customer provides the customer read model consumed during order
// creation. Only the customer's existence matters to this service; the
// customer service owns everything else.
package customer

import (
	"ordering/internal/core/domain/model/kernel"
)

// Customer is the minimal aggregate identifying a known customer.
type Customer struct {
	id kernel.UUID
}

// NewCustomer creates a customer with the given identity.
func NewCustomer(id kernel.UUID) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Customer{id: id}, nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}
