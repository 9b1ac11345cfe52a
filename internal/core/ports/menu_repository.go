package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// MenuRepository defines the persistence contract for the product catalog:
// the products customers can order and the extras that can be attached to
// a line item.
type MenuRepository interface {
	// AddProduct persists a new catalog product.
	AddProduct(ctx context.Context, aggregate *product.Product) error

	// AddExtra persists a new extra.
	AddExtra(ctx context.Context, aggregate *product.Extra) error

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetExtra retrieves an extra by its unique identifier.
	GetExtra(ctx context.Context, id kernel.UUID) (*product.Extra, error)

	// GetAllProducts retrieves the full catalog, available items included.
	GetAllProducts(ctx context.Context) ([]*product.Product, error)

	// GetAllExtras retrieves every extra on the menu.
	GetAllExtras(ctx context.Context) ([]*product.Extra, error)

	// CountProducts returns the number of catalog products. Used at
	// startup to decide whether the menu needs seeding.
	CountProducts(ctx context.Context) (int64, error)
}
