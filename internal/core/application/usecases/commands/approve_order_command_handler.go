package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// ApproveOrderCommandHandler finalizes the happy path of the order saga.
// Approval ends the workflow, so no event is emitted.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	processor  services.OrderProcessor
}

// NewApproveOrderCommandHandler creates a handler for restaurant approvals.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, processor services.OrderProcessor) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle processes the approval.
// Loads the order, applies the approve transition and persists the result.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	if err = h.processor.ApproveOrder(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
