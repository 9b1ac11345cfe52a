// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence: the products customers order and the extras that
// can be attached to a line item.
package productrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null;index"`
	BasePriceCents int64     `gorm:"not null"`
	Description    string    `gorm:"not null;default:''"`
	Category       string    `gorm:"not null;default:'';index"`
	Available      bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// ExtraDTO represents the database structure for persisting extras.
type ExtraDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null;index"`
	PriceCents int64     `gorm:"not null"`
	Category   string    `gorm:"not null;default:''"`
}

// TableName specifies the database table name for extra entities.
func (ExtraDTO) TableName() string {
	return "extras"
}

func productFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID().Bytes(),
		Name:           p.Name(),
		BasePriceCents: p.BasePrice().Cents(),
		Description:    p.Description(),
		Category:       p.Category(),
		Available:      p.Available(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.BasePriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.Description, dto.Category, dto.Available)
}

func extraFromDomain(e *product.Extra) ExtraDTO {
	return ExtraDTO{
		ID:         e.ID().Bytes(),
		Name:       e.Name(),
		PriceCents: e.Price().Cents(),
		Category:   e.Category(),
	}
}

func extraToDomain(dto ExtraDTO) (*product.Extra, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return product.NewExtra(id, dto.Name, price, dto.Category)
}
