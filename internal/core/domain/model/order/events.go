package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OrderItemSummary is the immutable per-line view carried inside event
// snapshots.
type OrderItemSummary struct {
	ProductID kernel.UUID
	Quantity  int
	SubTotal  kernel.Money
}

// OrderSnapshot is an immutable by-value view of an order taken at event
// construction time. Events carry a snapshot rather than a reference to the
// live aggregate, so later mutations of the order never leak into an
// already-produced event.
type OrderSnapshot struct {
	OrderID         kernel.UUID
	TrackingID      kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Price           kernel.Money
	Status          Status
	FailureMessages []string
	Items           []OrderItemSummary
}

func snapshotOf(o *Order) OrderSnapshot {
	items := make([]OrderItemSummary, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, OrderItemSummary{
			ProductID: item.Product().ID(),
			Quantity:  item.Quantity(),
			SubTotal:  item.SubTotal(),
		})
	}

	messages := make([]string, len(o.failureMessages))
	copy(messages, o.failureMessages)

	return OrderSnapshot{
		OrderID:         o.id,
		TrackingID:      o.trackingID,
		CustomerID:      o.customerID,
		RestaurantID:    o.restaurantID,
		Price:           o.price,
		Status:          o.status,
		FailureMessages: messages,
		Items:           items,
	}
}

// DomainEvent is the closed set of order lifecycle notifications. All
// variants carry the same snapshot payload and are distinguished by type
// for exhaustive handling.
type DomainEvent interface {
	// Name returns the event kind for routing and serialization.
	Name() string
	// Order returns the snapshot taken when the event was produced.
	Order() OrderSnapshot
	// OccurredAt returns the UTC creation timestamp.
	OccurredAt() time.Time

	isDomainEvent()
}

type event struct {
	order      OrderSnapshot
	occurredAt time.Time
}

func (e event) Order() OrderSnapshot  { return e.order }
func (e event) OccurredAt() time.Time { return e.occurredAt }
func (e event) isDomainEvent()        {}

// OrderCreatedEvent signals that an order passed validation and was
// initialized. Downstream it triggers payment initiation.
type OrderCreatedEvent struct{ event }

// NewOrderCreatedEvent produces a created event snapshotting the order.
func NewOrderCreatedEvent(o *Order, occurredAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{event{order: snapshotOf(o), occurredAt: occurredAt}}
}

// Name implements DomainEvent.
func (OrderCreatedEvent) Name() string { return "OrderCreated" }

// OrderPaidEvent signals a confirmed payment. Downstream it triggers the
// restaurant approval request.
type OrderPaidEvent struct{ event }

// NewOrderPaidEvent produces a paid event snapshotting the order.
func NewOrderPaidEvent(o *Order, occurredAt time.Time) OrderPaidEvent {
	return OrderPaidEvent{event{order: snapshotOf(o), occurredAt: occurredAt}}
}

// Name implements DomainEvent.
func (OrderPaidEvent) Name() string { return "OrderPaid" }

// OrderCancelledEvent signals the start of payment compensation.
type OrderCancelledEvent struct{ event }

// NewOrderCancelledEvent produces a cancelled event snapshotting the order.
func NewOrderCancelledEvent(o *Order, occurredAt time.Time) OrderCancelledEvent {
	return OrderCancelledEvent{event{order: snapshotOf(o), occurredAt: occurredAt}}
}

// Name implements DomainEvent.
func (OrderCancelledEvent) Name() string { return "OrderCancelled" }
