package services

import (
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// OrderProcessor is the stateless domain service driving the order
// lifecycle. It owns no state of its own and is safe to share across
// goroutines as long as each order instance is only operated on by a single
// caller at a time.
//
// Business rules:
//   - Only an active restaurant can accept an order.
//   - Item names and prices are overwritten from the restaurant catalog
//     before validation, so tampered or stale client values are corrected
//     against the source of truth.
//   - A rejected initiation leaves the order unsaved and uninitialized.
//   - Transitions that must trigger a downstream step (created, paid,
//     cancelling) return an event for the caller to publish; terminal
//     bookkeeping transitions (approve, final cancel) do not.
type OrderProcessor struct {
	logger *slog.Logger
}

// NewOrderProcessor creates an OrderProcessor logging through the given logger.
func NewOrderProcessor(logger *slog.Logger) OrderProcessor {
	return OrderProcessor{
		logger: logger.With("component", "order_processor"),
	}
}

// ValidateAndInitiateOrder validates an unsaved order against the restaurant
// snapshot and initializes it: restaurant-active check, authoritative
// catalog re-pricing, order self-validation, identity assignment. On
// success the order is Pending and a created event is returned. On any
// failure the order is left untouched, with no identity assigned.
func (p OrderProcessor) ValidateAndInitiateOrder(o *order.Order, r *restaurant.Restaurant) (order.OrderCreatedEvent, error) {
	if err := p.validateRestaurant(r); err != nil {
		return order.OrderCreatedEvent{}, err
	}
	if err := p.confirmOrderProductInformation(o, r); err != nil {
		return order.OrderCreatedEvent{}, err
	}
	if err := o.ValidateOrder(); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	o.InitializeOrder()
	p.logger.Info("order initiated", "order_id", o.ID().String())
	return order.NewOrderCreatedEvent(o, time.Now().UTC()), nil
}

// PayOrder marks the order as paid and returns the paid event that triggers
// the restaurant approval request.
func (p OrderProcessor) PayOrder(o *order.Order) (order.OrderPaidEvent, error) {
	if err := o.Pay(); err != nil {
		return order.OrderPaidEvent{}, err
	}

	p.logger.Info("order paid", "order_id", o.ID().String())
	return order.NewOrderPaidEvent(o, time.Now().UTC()), nil
}

// ApproveOrder marks the paid order as approved. No event is produced; no
// further saga step depends on approval in this core.
func (p OrderProcessor) ApproveOrder(o *order.Order) error {
	if err := o.Approve(); err != nil {
		return err
	}

	p.logger.Info("order approved", "order_id", o.ID().String())
	return nil
}

// CancelOrderPayment starts payment compensation for a paid order and
// returns the cancelled event that triggers it downstream.
func (p OrderProcessor) CancelOrderPayment(o *order.Order, failureMessages []string) (order.OrderCancelledEvent, error) {
	if err := o.InitCancel(failureMessages); err != nil {
		return order.OrderCancelledEvent{}, err
	}

	p.logger.Info("order payment is being cancelled", "order_id", o.ID().String())
	return order.NewOrderCancelledEvent(o, time.Now().UTC()), nil
}

// CancelOrder finalizes cancellation. No event is produced; the transition
// is terminal bookkeeping.
func (p OrderProcessor) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Cancel(failureMessages); err != nil {
		return err
	}

	p.logger.Info("order cancelled", "order_id", o.ID().String())
	return nil
}

func (p OrderProcessor) validateRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsActive() {
		return errs.NewInvariantViolationError(fmt.Sprintf(
			"restaurant with id %s is currently not active", r.ID()))
	}
	return nil
}

// confirmOrderProductInformation overwrites each item's product name and
// price with the catalog's authoritative values. An order referencing a
// product absent from the catalog is rejected outright.
func (p OrderProcessor) confirmOrderProductInformation(o *order.Order, r *restaurant.Restaurant) error {
	for _, item := range o.Items() {
		current := item.Product()
		confirmed, ok := r.ProductByID(current.ID())
		if !ok {
			return errs.NewObjectNotFoundError("product", current.ID().String())
		}
		current.UpdateWithConfirmedNameAndPrice(confirmed.Name(), confirmed.Price())
	}
	return nil
}
