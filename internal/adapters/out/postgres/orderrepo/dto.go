// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery address is embedded in the orders table; item lines live in
// their own table keyed by order ID.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          int             `gorm:"index"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	Address         AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid"`
	Street     string
	PostalCode string
	City       string
}

// OrderItemDTO represents a single order line. Item IDs start at 1 and are
// unique only within their order, so the primary key is composite.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
	SubTotal  decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.Product().ID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingID:      aggregate.TrackingID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		Price:           aggregate.Price().Amount(),
		Status:          int(aggregate.Status()),
		FailureMessages: aggregate.FailureMessages(),
		Address: AddressDTO{
			ID:         address.ID().Bytes(),
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Items: items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder; products are
// restored as identity references since the order table does not replicate
// catalog data.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.Address.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.RestoreStreetAddress(addressID, dto.Address.Street, dto.Address.PostalCode, dto.Address.City)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		trackingID,
		customerID,
		restaurantID,
		address,
		kernel.NewMoney(dto.Price),
		items,
		order.Status(dto.Status),
		dto.FailureMessages,
	)
}

func itemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	productRef, err := product.NewProduct(productID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(
		dto.ID,
		orderID,
		productRef,
		dto.Quantity,
		kernel.NewMoney(dto.Price),
		kernel.NewMoney(dto.SubTotal),
	)
}
