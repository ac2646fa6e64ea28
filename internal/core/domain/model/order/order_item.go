package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// OrderItem is one line of an order. Its identity (a 1-based sequential id
// scoped to the owning order) is stamped exactly once by the aggregate
// during order initialization and is unset before that.
type OrderItem struct {
	id       int64
	orderID  kernel.UUID
	product  *product.Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money
}

// NewOrderItem creates a line item from order input: the referenced product,
// a positive quantity, and the client-submitted price and subtotal. Price
// consistency is not checked here; that happens during order validation,
// after the product has been confirmed against the restaurant catalog.
func NewOrderItem(p *product.Product, quantity int, price, subTotal kernel.Money) (*OrderItem, error) {
	if p == nil {
		return nil, errs.NewValueIsRequiredError("order item product")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &OrderItem{
		product:  p,
		quantity: quantity,
		price:    price,
		subTotal: subTotal,
	}, nil
}

// RestoreOrderItem rebuilds an already-initialized line item from persistence.
func RestoreOrderItem(id int64, orderID kernel.UUID, p *product.Product, quantity int, price, subTotal kernel.Money) (*OrderItem, error) {
	item, err := NewOrderItem(p, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}
	if err = orderID.Validate(); err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// IsPriceValid reports whether the submitted price matches the (confirmed)
// product price and the submitted subtotal equals price times quantity.
// Both checks use exact Money equality on the rounded amounts.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsEqual(i.product.Price()) &&
		i.subTotal.IsEqual(i.price.Multiply(i.quantity))
}

// ID returns the item's sequential id, 0 before initialization.
func (i *OrderItem) ID() int64 {
	return i.id
}

// OrderID returns the owning order's id, zero before initialization.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// Product returns the referenced product.
func (i *OrderItem) Product() *product.Product {
	return i.product
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the submitted unit price.
func (i *OrderItem) Price() kernel.Money {
	return i.price
}

// SubTotal returns the submitted line subtotal.
func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// initialize stamps ownership and identity. Called by the aggregate during
// order initialization only; the aggregate's already-initialized check is
// the safeguard against a second call.
func (i *OrderItem) initialize(orderID kernel.UUID, itemID int64) {
	i.orderID = orderID
	i.id = itemID
}
