// Package restaurant provides the restaurant read model supplied to the
// order domain service. The restaurant's product catalog is the source of
// truth for pricing: order items are corrected against it before validation.
package restaurant

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a read-only snapshot of a restaurant: its active flag and
// authoritative product catalog. It is supplied fully formed by the caller
// before order initiation; this service never fetches it itself.
type Restaurant struct {
	id       kernel.UUID
	active   bool
	products []*product.Product
	catalog  map[kernel.UUID]*product.Product

	isConstructed bool
}

// NewRestaurant creates a restaurant snapshot with its product catalog.
// The catalog must contain at least one product.
func NewRestaurant(id kernel.UUID, active bool, products []*product.Product) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewValueIsRequiredError("restaurant products")
	}

	catalog := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		catalog[p.ID()] = p
	}

	return &Restaurant{
		id:            id,
		active:        active,
		products:      products,
		catalog:       catalog,
		isConstructed: true,
	}, nil
}

// Validate ensures the restaurant was constructed through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Products returns the catalog products.
func (r *Restaurant) Products() []*product.Product {
	return r.products
}

// ProductByID looks up a catalog product by its identifier.
func (r *Restaurant) ProductByID(id kernel.UUID) (*product.Product, bool) {
	p, ok := r.catalog[id]
	return p, ok
}
