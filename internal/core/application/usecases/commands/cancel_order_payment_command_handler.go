package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// CancelOrderPaymentCommandHandler moves a paid order into cancelling so the
// payment service can refund it. The resulting OrderCancelled event is stored
// in the outbox within the same transaction.
type CancelOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	processor  services.OrderProcessor
}

// NewCancelOrderPaymentCommandHandler creates a handler for payment cancellations.
func NewCancelOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	processor services.OrderProcessor,
) CancelOrderPaymentCommandHandler {
	return CancelOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle processes the payment cancellation request.
func (h *CancelOrderPaymentCommandHandler) Handle(ctx context.Context, cmd CancelOrderPaymentCommand) error {
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

	event, err := h.processor.CancelOrderPayment(aggregate, cmd.FailureMessages())
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
