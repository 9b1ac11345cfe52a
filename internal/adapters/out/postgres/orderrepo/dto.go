// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer is embedded in the orders row; line items and their extras
// live in child tables and are snapshots of the catalog at order time, so
// later menu edits never change what a customer was charged.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerName    string         `gorm:"not null"`
	CustomerPhone   string         `gorm:"not null"`
	CustomerEmail   string         `gorm:"not null;default:''"`
	DeliveryAddress string         `gorm:"not null"`
	Status          int            `gorm:"index"`
	TotalCents      int64          `gorm:"not null"`
	Notes           string         `gorm:"not null;default:''"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime:false"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item of an order, with a snapshot of the
// ordered product.
type OrderItemDTO struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID           `gorm:"type:uuid;index"`
	ProductID          uuid.UUID           `gorm:"type:uuid"`
	ProductName        string              `gorm:"not null"`
	UnitPriceCents     int64               `gorm:"not null"`
	ProductDescription string              `gorm:"not null;default:''"`
	ProductCategory    string              `gorm:"not null;default:''"`
	Quantity           int                 `gorm:"not null"`
	Extras             []OrderItemExtraDTO `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderItemExtraDTO represents one extra attached to a line item, again as
// a snapshot of the catalog entry.
type OrderItemExtraDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderItemID uuid.UUID `gorm:"type:uuid;index"`
	ExtraID     uuid.UUID `gorm:"type:uuid"`
	Name        string    `gorm:"not null"`
	PriceCents  int64     `gorm:"not null"`
	Category    string    `gorm:"not null;default:''"`
}

// TableName specifies the database table name for line item extras.
func (OrderItemExtraDTO) TableName() string {
	return "order_item_extras"
}

// fromDomain converts an order domain aggregate to its database representation.
// Child row ids are generated here; they are storage concerns the domain
// never sees.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemID := uuid.New()

		extras := make([]OrderItemExtraDTO, 0, len(item.Extras()))
		for _, extra := range item.Extras() {
			extras = append(extras, OrderItemExtraDTO{
				ID:          uuid.New(),
				OrderItemID: itemID,
				ExtraID:     extra.ID().Bytes(),
				Name:        extra.Name(),
				PriceCents:  extra.Price().Cents(),
				Category:    extra.Category(),
			})
		}

		items = append(items, OrderItemDTO{
			ID:                 itemID,
			OrderID:            aggregate.ID().Bytes(),
			ProductID:          item.Product().ID().Bytes(),
			ProductName:        item.Product().Name(),
			UnitPriceCents:     item.Product().BasePrice().Cents(),
			ProductDescription: item.Product().Description(),
			ProductCategory:    item.Product().Category(),
			Quantity:           item.Quantity(),
			Extras:             extras,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		CustomerEmail:   aggregate.Customer().Email(),
		DeliveryAddress: aggregate.Customer().DeliveryAddress(),
		Status:          int(aggregate.Status()),
		TotalCents:      aggregate.TotalAmount().Cents(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its snapshot products
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customer,
		items,
		order.Status(dto.Status),
		total,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return order.LineItem{}, err
	}

	// Snapshots are restored as available regardless of the catalog's
	// current state: the item was orderable when the order was placed.
	p, err := product.RestoreProduct(
		productID, dto.ProductName, unitPrice, dto.ProductDescription, dto.ProductCategory, true)
	if err != nil {
		return order.LineItem{}, err
	}

	extras := make([]*product.Extra, 0, len(dto.Extras))
	for _, extraDTO := range dto.Extras {
		extraID, extraErr := kernel.UUIDFromBytes(extraDTO.ExtraID[:])
		if extraErr != nil {
			return order.LineItem{}, extraErr
		}

		price, priceErr := kernel.NewMoneyFromCents(extraDTO.PriceCents)
		if priceErr != nil {
			return order.LineItem{}, priceErr
		}

		extra, newErr := product.NewExtra(extraID, extraDTO.Name, price, extraDTO.Category)
		if newErr != nil {
			return order.LineItem{}, newErr
		}
		extras = append(extras, extra)
	}

	return order.NewLineItem(p, extras, dto.Quantity)
}
