package ports

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// StatisticsCache is a short-lived cache for the aggregated order
// statistics, sitting between the statistics query and the database.
// The dashboard polls frequently, so a few seconds of staleness buys a
// large reduction in load.
type StatisticsCache interface {
	// Get returns the cached statistics. The second result is false on a
	// cache miss.
	Get(ctx context.Context) (services.Statistics, bool, error)

	// Set stores the statistics under the cache's TTL.
	Set(ctx context.Context, stats services.Statistics) error
}
