// Package queries contains read-only operations over the order system.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return flat response models, bypassing
// the domain aggregates.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via a NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally excluding one status.
// The exclusion is how dashboards show active work: everything that is not
// yet delivered.
//
// Example:
//
//	query, err := NewGetOrdersQueryExcludingStatus(order.StatusDelivered)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	active, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	excludeStatus *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryExcludingStatus creates a query that skips orders in the
// given status. Returns an error if the status is not a known lifecycle state.
func NewGetOrdersQueryExcludingStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		excludeStatus: &status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ExcludeStatus returns the status to skip, or nil when all orders are wanted.
func (q GetOrdersQuery) ExcludeStatus() *order.Status {
	return q.excludeStatus
}

// OrderResponse represents one order in read-model form: customer contact
// data, priced line items, and lifecycle state.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Status          order.Status
	Total           kernel.Money
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemResponse
}

// OrderItemResponse represents one priced line of an order.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	LineTotal   kernel.Money
	Extras      []OrderExtraResponse
}

// OrderExtraResponse represents one extra attached to a line item.
type OrderExtraResponse struct {
	ExtraID kernel.UUID
	Name    string
	Price   kernel.Money
}
