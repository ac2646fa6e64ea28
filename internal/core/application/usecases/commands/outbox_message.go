package commands

import (
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// orderEventPayload is the wire form of a domain event stored in the outbox.
// Money values travel as fixed two-decimal strings so consumers never see
// binary floating point.
type orderEventPayload struct {
	EventType       string             `json:"eventType"`
	OrderID         string             `json:"orderId"`
	TrackingID      string             `json:"trackingId"`
	CustomerID      string             `json:"customerId"`
	RestaurantID    string             `json:"restaurantId"`
	Price           string             `json:"price"`
	Status          string             `json:"status"`
	FailureMessages []string           `json:"failureMessages,omitempty"`
	Items           []orderItemPayload `json:"items"`
	OccurredAt      time.Time          `json:"occurredAt"`
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SubTotal  string `json:"subTotal"`
}

// newOutboxMessage serializes a domain event into an outbox message
// ready to be stored alongside the aggregate change.
func newOutboxMessage(event order.DomainEvent) (ports.OutboxMessage, error) {
	snapshot := event.Order()

	items := make([]orderItemPayload, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			SubTotal:  item.SubTotal.String(),
		})
	}

	payload, err := json.Marshal(orderEventPayload{
		EventType:       event.Name(),
		OrderID:         snapshot.OrderID.String(),
		TrackingID:      snapshot.TrackingID.String(),
		CustomerID:      snapshot.CustomerID.String(),
		RestaurantID:    snapshot.RestaurantID.String(),
		Price:           snapshot.Price.String(),
		Status:          snapshot.Status.String(),
		FailureMessages: snapshot.FailureMessages,
		Items:           items,
		OccurredAt:      event.OccurredAt(),
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		EventType: event.Name(),
		OrderID:   snapshot.OrderID,
		Payload:   payload,
		CreatedAt: event.OccurredAt(),
	}, nil
}
