package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired     = errors.New("street is required")
	ErrPostalCodeIsRequired = errors.New("postal code is required")
	ErrCityIsRequired       = errors.New("city is required")
	ErrItemsAreRequired     = errors.New("at least one order item is required")
	ErrQuantityIsInvalid    = errors.New("item quantity must be greater than 0")
)

// OrderItemData carries the item lines of a create order request:
// which product, how many, and the price the customer saw.
type OrderItemData struct {
	ProductID kernel.UUID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// CreateOrderCommand represents a customer's request to place a food order.
// Carries the customer, the restaurant, the delivery address, the total price
// the customer confirmed and the individual item lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID,
//	    "123 Main Street", "10115", "Berlin", total, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, customers, restaurants, processor)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	street       string
	postalCode   string
	city         string
	price        kernel.Money
	items        []OrderItemData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new food order.
// Validates identifiers, address fields, price presence and item quantities.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	street string,
	postalCode string,
	city string,
	price kernel.Money,
	items []OrderItemData,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setAddress(street, postalCode, city),
		orderCommand.setPrice(price),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Street returns the delivery street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// PostalCode returns the delivery postal code.
func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Price returns the order total the customer confirmed.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns the order item lines.
func (c CreateOrderCommand) Items() []OrderItemData {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setAddress(street, postalCode, city string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	if city == "" {
		return ErrCityIsRequired
	}

	c.street = street
	c.postalCode = postalCode
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
		if err := item.Price.Validate(); err != nil {
			return err
		}
		if err := item.SubTotal.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
