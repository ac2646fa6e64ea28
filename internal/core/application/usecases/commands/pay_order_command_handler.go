package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// PayOrderCommandHandler moves a pending order to paid after the payment
// service confirmed the charge. The resulting OrderPaid event is stored in
// the outbox within the same transaction.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	processor  services.OrderProcessor
}

// NewPayOrderCommandHandler creates a handler for payment confirmations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, processor services.OrderProcessor) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle processes the payment confirmation.
// Loads the order, applies the pay transition and persists the updated
// aggregate together with its OrderPaid outbox message.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	event, err := h.processor.PayOrder(aggregate)
	if err != nil {
		return err
	}

	message, err := newOutboxMessage(event)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
