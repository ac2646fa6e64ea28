package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository provides read access to the restaurant catalog replica.
// Orders are validated and priced against this data, so implementations must
// return the restaurant together with its products.
type RestaurantRepository interface {
	// Get retrieves a restaurant with its product catalog by identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
