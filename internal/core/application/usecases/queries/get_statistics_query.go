package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetStatisticsQueryIsNotConstructed = errors.New(
		"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
	)
)

// GetStatisticsQuery retrieves aggregated order statistics for the admin
// dashboard: totals, averages, per-status counts and daily revenue.
//
// Example:
//
//	query := NewGetStatisticsQuery()
//	handler := NewGetStatisticsQueryHandler(db, cache)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute statistics: %w", err)
//	}
type GetStatisticsQuery struct {
	guard        guard.ConstructorGuard
	forceRefresh bool
}

// NewGetStatisticsQuery creates a query to retrieve order statistics.
// This is a parameterless query; the statistics always cover all orders.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// NewForceRefreshGetStatisticsQuery creates a query that bypasses the cached
// snapshot and recomputes statistics from the database. The recomputed value
// is still stored in the cache, so a forced refresh resets the TTL.
func NewForceRefreshGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard(), forceRefresh: true}
}

// ForceRefresh reports whether the query must skip the cached snapshot.
func (q GetStatisticsQuery) ForceRefresh() bool {
	return q.forceRefresh
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatisticsQueryIsNotConstructed if validation fails.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}
