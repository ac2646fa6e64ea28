package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads order tracking state from the database.
// Goes straight to the orders table instead of rehydrating the aggregate,
// since tracking needs no business behavior.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns ObjectNotFoundError if no order carries the given tracking ID.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Row()

	var trackingID uuid.UUID
	var status order.Status
	var failureMessages pq.StringArray

	if err := row.Scan(&trackingID, &status, &failureMessages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"order", query.TrackingID().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		TrackingID:      responseID,
		Status:          status,
		FailureMessages: failureMessages,
	}, nil
}
