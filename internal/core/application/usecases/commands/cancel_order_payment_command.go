package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderPaymentCommandIsNotConstructed = errors.New(
	"CancelOrderPaymentCommand must be created via NewCancelOrderPaymentCommand constructor",
)

// CancelOrderPaymentCommand starts the compensation path for a paid order
// whose approval was rejected. The failure messages explain why.
type CancelOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderPaymentCommand creates a command to request a payment refund
// for an order that could not be approved.
func NewCancelOrderPaymentCommand(orderID kernel.UUID, failureMessages []string) (CancelOrderPaymentCommand, error) {
	cancelCommand := CancelOrderPaymentCommand{
		guard:           guard.NewConstructorGuard(),
		failureMessages: failureMessages,
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderPaymentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is cancelled.
func (c CancelOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FailureMessages returns the reasons for the cancellation.
func (c CancelOrderPaymentCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *CancelOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
