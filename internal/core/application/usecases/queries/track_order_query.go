// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read directly from the
// database for efficiency.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the current state of an order by the tracking
// identifier the customer received when placing it.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTrackOrderQueryHandler(db)
//	status, err := handler.Handle(ctx, query)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order.
// Validates that the tracking ID is a properly constructed UUID.
func NewTrackOrderQuery(trackingID kernel.UUID) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}
	query.trackingID = trackingID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingID returns the customer-facing order identifier.
func (q TrackOrderQuery) TrackingID() kernel.UUID {
	return q.trackingID
}

// TrackOrderQueryResponse carries the order state a customer is allowed
// to see: the tracking handle, the current status and the reasons for a
// cancellation, if any.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.UUID
	Status          order.Status
	FailureMessages []string
}
