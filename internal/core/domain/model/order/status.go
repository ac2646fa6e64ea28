package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the fulfillment
// workflow exactly.
//
// State transitions:
//
//	Pending ──> Paid ──> Approved
//	   │          │
//	   │          └──> Cancelling ──> Cancelled
//	   └─────────────────────────────────┘
//	(direct cancellation before payment)
//
// Approved and Cancelled are terminal. Every other (state, operation) pair
// is rejected with an invariant-violation error and leaves the state
// unchanged.
type Status int

const (
	// Unknown represents an uninitialized order. Orders carry this value
	// only before InitializeOrder has run.
	Unknown Status = iota

	// Pending is assigned at initialization, before payment.
	Pending

	// Paid means the payment service confirmed the payment.
	Paid

	// Approved means the restaurant approved the paid order. Terminal.
	Approved

	// Cancelling means payment compensation is in progress after a
	// post-payment failure.
	Cancelling

	// Cancelled is the terminal state of a cancelled order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown and out-of-range values are invalid. Used when reconstructing
// orders from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for any
// value outside the defined set.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid. Only Pending orders can be paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvariantViolationErrorWithCause(
			"order is not in correct state for pay operation",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}
	return Paid, nil
}

// Approve transitions the status to Approved. Only Paid orders can be
// approved; Approved is terminal.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvariantViolationErrorWithCause(
			"order is not in correct state for approve operation",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Approved, nil
}

// InitCancel transitions the status to Cancelling. Only Paid orders start
// payment compensation; unpaid orders are cancelled directly via Cancel.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvariantViolationErrorWithCause(
			"order is not in correct state for payment cancellation",
			fmt.Errorf("%s is not a valid status to start cancelling", s.String()),
		)
	}
	return Cancelling, nil
}

// Cancel transitions the status to Cancelled. Legal from Pending (direct
// cancellation before payment) and from Cancelling (compensation finished).
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Cancelling {
		return 0, errs.NewInvariantViolationErrorWithCause(
			"order is not in correct state for cancel operation",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
