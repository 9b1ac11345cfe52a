package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the product catalog: orderable products and the
// extras that can be attached to them.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches all products and extras.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuResponse represents the full catalog.
type MenuResponse struct {
	Products []ProductResponse
	Extras   []ExtraResponse
}

// ProductResponse represents one orderable product.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	BasePrice   kernel.Money
	Description string
	Category    string
	Available   bool
}

// ExtraResponse represents one attachable extra.
type ExtraResponse struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Category string
}
