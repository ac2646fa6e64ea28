package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	catalog, productID := testCatalog(t)
	buyer, err := customer.NewCustomer(kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(buyer.ID(), catalog.ID(),
		"1 Main Street", "10115", "Berlin", mustMoney(t, "50.00"), validItems(t, productID))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once()
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, catalog.ID()).Return(catalog, nil).Once()

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, customers, restaurants, testProcessor())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, result.OrderID.Validate())
	require.NoError(t, result.TrackingID.Validate())
	assert.Equal(t, order.Pending, result.Status)
	orderRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory,
		new(MockCustomerRepository), new(MockRestaurantRepository), testProcessor())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	catalog, productID := testCatalog(t)
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(customerID, catalog.ID(),
		"1 Main Street", "10115", "Berlin", mustMoney(t, "50.00"), validItems(t, productID))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("Get", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("customer", customerID.Bytes())).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, customers,
		new(MockRestaurantRepository), testProcessor())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	customers.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PriceMismatchWritesNothing(t *testing.T) {
	ctx := t.Context()
	catalog, productID := testCatalog(t)
	buyer, err := customer.NewCustomer(kernel.NewUUID())
	require.NoError(t, err)

	// declared total disagrees with the single 50.00 item line
	cmd, err := commands.NewCreateOrderCommand(buyer.ID(), catalog.ID(),
		"1 Main Street", "10115", "Berlin", mustMoney(t, "49.99"), validItems(t, productID))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once()
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, catalog.ID()).Return(catalog, nil).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, customers, restaurants, testProcessor())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvariantViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	catalog, productID := testCatalog(t)
	buyer, err := customer.NewCustomer(kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(buyer.ID(), catalog.ID(),
		"1 Main Street", "10115", "Berlin", mustMoney(t, "50.00"), validItems(t, productID))
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once()
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, catalog.ID()).Return(catalog, nil).Once()

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, customers, restaurants, testProcessor())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
