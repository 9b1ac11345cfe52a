// Package ports defines the driven-side interfaces of the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their line items and status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with customer, line items and extras.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllExcludingStatus retrieves every order whose status differs
	// from the given one, newest first. Used by dashboards to list
	// active orders without the delivered backlog.
	GetAllExcludingStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
