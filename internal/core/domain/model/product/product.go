// Package product provides the catalog product entity shared by orders and
// restaurants. Order items reference a product by id; the name and price the
// client submitted are overwritten from the restaurant's authoritative
// catalog before price validation.
package product

import (
	"ordering/internal/core/domain/model/kernel"
)

// Product is a restaurant catalog entry. Name and price are mutable on
// purpose: UpdateWithConfirmedNameAndPrice corrects tampered or stale
// client-submitted values with the catalog's source of truth.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money
}

// NewProduct creates a product reference carrying only its identity.
// Used for order input, where name and price are confirmed later from
// the restaurant catalog.
func NewProduct(id kernel.UUID) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Product{id: id}, nil
}

// NewProductWithDetails creates a fully described catalog product.
func NewProductWithDetails(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	p, err := NewProduct(id)
	if err != nil {
		return nil, err
	}

	p.name = name
	p.price = price
	return p, nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// UpdateWithConfirmedNameAndPrice overwrites the name and price with the
// authoritative values from the restaurant catalog.
func (p *Product) UpdateWithConfirmedNameAndPrice(name string, price kernel.Money) {
	p.name = name
	p.price = price
}
