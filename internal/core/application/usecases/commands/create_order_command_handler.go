package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderResult is returned to the caller after a successful order
// creation. The tracking ID is the customer-facing handle for the order.
type CreateOrderResult struct {
	OrderID    kernel.UUID
	TrackingID kernel.UUID
	Status     order.Status
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the customer exists, validates the order against the restaurant
// catalog and persists the initiated order together with its created event
// in a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	customers   ports.CustomerRepository
	restaurants ports.RestaurantRepository
	processor   services.OrderProcessor
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerRepository,
	restaurants ports.RestaurantRepository,
	processor services.OrderProcessor,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		customers:   customers,
		restaurants: restaurants,
		processor:   processor,
	}
}

// Handle processes the order creation command.
// The order is validated and priced against the restaurant catalog before
// anything is written. On success the order and its OrderCreated outbox
// message are committed atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	if _, err := h.customers.Get(ctx, cmd.CustomerID()); err != nil {
		return CreateOrderResult{}, err
	}

	restaurant, err := h.restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := buildOrder(cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	event, err := h.processor.ValidateAndInitiateOrder(newOrder, restaurant)
	if err != nil {
		return CreateOrderResult{}, err
	}

	message, err := newOutboxMessage(event)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:    newOrder.ID(),
		TrackingID: newOrder.TrackingID(),
		Status:     newOrder.Status(),
	}, nil
}

func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	address, err := order.NewStreetAddress(cmd.Street(), cmd.PostalCode(), cmd.City())
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, itemData := range cmd.Items() {
		productRef, err := product.NewProduct(itemData.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(productRef, itemData.Quantity, itemData.Price, itemData.SubTotal)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(), address, cmd.Price(), items)
}
