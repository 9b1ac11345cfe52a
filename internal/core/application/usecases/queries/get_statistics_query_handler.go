package queries

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// statsRow is the minimal projection of an order needed by the statistics
// aggregation. It satisfies services.OrderFacts.
type statsRow struct {
	status    order.Status
	total     kernel.Money
	createdAt time.Time
}

func (r statsRow) Status() order.Status      { return r.status }
func (r statsRow) TotalAmount() kernel.Money { return r.total }
func (r statsRow) CreatedAt() time.Time      { return r.createdAt }

// GetStatisticsQueryHandler computes dashboard statistics over all orders.
// Results are cached for a short TTL because the dashboard polls the
// endpoint every few seconds; the cache is best-effort and a cache outage
// degrades to recomputation, never to an error.
type GetStatisticsQueryHandler struct {
	db    *gorm.DB
	cache ports.StatisticsCache
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection; the cache may be nil to disable
// caching entirely.
func NewGetStatisticsQueryHandler(db *gorm.DB, cache ports.StatisticsCache) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db, cache: cache}
}

// Handle executes the query. Loads a three-column projection of every
// order and aggregates it in memory; the heavy lifting lives in
// services.Aggregate so the numbers match the domain's definition exactly.
// A force-refresh query skips the cache read but still stores the result,
// resetting the snapshot TTL.
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (services.Statistics, error) {
	if err := query.Validate(); err != nil {
		return services.Statistics{}, err
	}

	if h.cache != nil && !query.ForceRefresh() {
		cached, ok, err := h.cache.Get(ctx)
		if err != nil {
			slog.Warn("statistics cache read failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	facts, err := h.readFacts(ctx)
	if err != nil {
		return services.Statistics{}, err
	}

	stats := services.Aggregate(facts)

	if h.cache != nil {
		if err = h.cache.Set(ctx, stats); err != nil {
			slog.Warn("statistics cache write failed", "error", err)
		}
	}

	return stats, nil
}

func (h GetStatisticsQueryHandler) readFacts(ctx context.Context) ([]statsRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			total_cents,
			created_at
		FROM orders
	`).Rows()
	if err != nil {
		return nil, errs.NewUpstreamFailureError("query order statistics", err)
	}
	defer rows.Close()

	facts := make([]statsRow, 0)

	for rows.Next() {
		var (
			status     int
			totalCents int64
			createdAt  time.Time
		)

		if err = rows.Scan(&status, &totalCents, &createdAt); err != nil {
			return nil, errs.NewUpstreamFailureError("scan order statistics row", err)
		}

		total, moneyErr := kernel.NewMoneyFromCents(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		facts = append(facts, statsRow{
			status:    order.Status(status),
			total:     total,
			createdAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUpstreamFailureError("query order statistics", err)
	}

	return facts, nil
}
