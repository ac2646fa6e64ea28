// Package restaurantrepo provides read access to the locally replicated
// restaurant catalog. The replica is maintained by catalog sync, the
// ordering side only reads it to validate and price incoming orders.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents a restaurant row in the local catalog replica.
type RestaurantDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name     string
	Active   bool
	Products []ProductDTO `gorm:"foreignKey:RestaurantID;references:ID"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents a catalog product row with its confirmed price.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a restaurant DTO with its products into the domain model.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	products := make([]*product.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		id, err := kernel.UUIDFromBytes(productDTO.ID[:])
		if err != nil {
			return nil, err
		}

		p, err := product.NewProductWithDetails(id, productDTO.Name, kernel.NewMoney(productDTO.Price))
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, dto.Active, products)
}
