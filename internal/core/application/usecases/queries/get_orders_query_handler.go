package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Supports the dashboard listing: all orders, or everything except one
// status (typically Delivered).
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQueryExcludingStatus(order.StatusDelivered)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders, newest first,
// each with its line items and extras attached.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if excluded := query.ExcludeStatus(); excluded != nil {
		return readOrders(ctx, h.db, "status != ?", int(*excluded))
	}

	return readOrders(ctx, h.db, "")
}
