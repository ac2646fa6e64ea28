package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// Order is the aggregate root of the purchase-order lifecycle. It owns its
// line items, delivery address, declared total price, status and failure
// messages, and is the single consistency boundary for the pricing and
// transition invariants.
//
// An order is built unsaved and uninitialized: no id, no tracking id, status
// Unknown. ValidateOrder checks economic consistency exactly once, at
// initiation time; InitializeOrder then assigns identities and moves the
// order to Pending. All later transitions only guard the status field.
//
// Order is not safe for concurrent use on the same instance: transitions
// read then write the status without locking. Uniqueness of the caller per
// aggregate is enforced outside this core, at the persistence boundary.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress StreetAddress
	price           kernel.Money
	items           []*OrderItem

	trackingID      kernel.UUID
	status          Status
	failureMessages []string

	isConstructed bool
}

// NewOrder creates an unsaved, uninitialized order from validated input.
// The declared total price and the item prices are deliberately not checked
// here: economic validation runs in ValidateOrder, after the domain service
// has confirmed item prices against the restaurant catalog.
func NewOrder(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{
		price:         price,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.validateItemsPresent(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an initialized order from persistence, including its
// assigned identities, status and accumulated failure messages.
func RestoreOrder(
	id kernel.UUID,
	trackingID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress StreetAddress,
	price kernel.Money,
	items []*OrderItem,
	status Status,
	failureMessages []string,
) (*Order, error) {
	o, err := NewOrder(customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(id.Validate(), trackingID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o.id = id
	o.trackingID = trackingID
	o.status = status
	o.failureMessages = failureMessages
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Prevents bypassing validation by direct struct
// instantiation, for example when reconstructing from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ValidateOrder checks the initiation invariants: the order must not be
// initialized yet, the declared total price must be strictly positive, every
// item must be price-consistent, and the Money-added item subtotals must
// equal the declared total. Run exactly once, before InitializeOrder; later
// transitions never re-check pricing.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// InitializeOrder assigns a fresh order id and tracking id, moves the order
// to Pending, and stamps sequential 1-based ids on the items. Assumes
// ValidateOrder has already passed.
func (o *Order) InitializeOrder() {
	o.id = kernel.NewUUID()
	o.trackingID = kernel.NewUUID()
	o.status = Pending

	var itemID int64 = 1
	for _, item := range o.items {
		item.initialize(o.id, itemID)
		itemID++
	}
}

// Pay marks the order as paid. Legal only from Pending.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve marks the paid order as approved by the restaurant. Legal only
// from Paid; Approved is terminal.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel starts payment compensation after a post-payment failure,
// moving the order from Paid to Cancelling and recording the failure
// messages.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel finalizes cancellation, from Pending (never paid) or Cancelling
// (compensation finished), recording the failure messages.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

// ID returns the order id, zero until InitializeOrder has run.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's id.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() StreetAddress {
	return o.deliveryAddress
}

// Price returns the declared total price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the ordered line items.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// TrackingID returns the customer-facing tracking id, zero until
// InitializeOrder has run. It is distinct from the internal order id and is
// the only identifier exposed for status polling.
func (o *Order) TrackingID() kernel.UUID {
	return o.trackingID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns the accumulated failure reasons, in call order.
func (o *Order) FailureMessages() []string {
	return o.failureMessages
}

func (o *Order) validateInitialOrder() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return errs.NewInvariantViolationError("order is not in correct state for initialization")
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewInvariantViolationError("total price must be greater than zero")
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.ZeroMoney
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"order item price %s is not valid for product %s",
				item.Price(), item.Product().ID()))
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewInvariantViolationError(fmt.Sprintf(
			"total price %s is not equal to order items total %s",
			o.price, itemsTotal))
	}
	return nil
}

// updateFailureMessages appends the non-blank incoming messages to the
// accumulated list. Messages are never cleared or deduplicated.
func (o *Order) updateFailureMessages(failureMessages []string) {
	filtered := make([]string, 0, len(failureMessages))
	for _, message := range failureMessages {
		if strings.TrimSpace(message) != "" {
			filtered = append(filtered, message)
		}
	}

	if o.failureMessages == nil {
		o.failureMessages = filtered
		return
	}
	o.failureMessages = append(o.failureMessages, filtered...)
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress StreetAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) validateItemsPresent() error {
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	return nil
}
