// Package redis caches computed order statistics between dashboard refreshes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const statisticsKey = "fooddelivery:statistics"

// DefaultTTL keeps cached statistics slightly ahead of the snapshot job
// interval so a fresh snapshot always lands before expiry.
const DefaultTTL = 30 * time.Second

// StatisticsCache stores aggregated statistics in Redis with a TTL.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatisticsCache creates a Redis-backed statistics cache.
func NewStatisticsCache(client *redis.Client, ttl time.Duration) *StatisticsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StatisticsCache{client: client, ttl: ttl}
}

// statisticsDTO is the cached representation. Money is stored as cents and
// statuses as their integer codes so the payload stays stable across releases.
type statisticsDTO struct {
	TotalOrders            int               `json:"total_orders"`
	TotalRevenueCents      int64             `json:"total_revenue_cents"`
	AverageOrderValueCents int64             `json:"average_order_value_cents"`
	OrdersByStatus         map[int]int       `json:"orders_by_status"`
	DailyRevenue           []dailyRevenueDTO `json:"daily_revenue"`
}

type dailyRevenueDTO struct {
	Date         time.Time `json:"date"`
	RevenueCents int64     `json:"revenue_cents"`
	Orders       int       `json:"orders"`
}

// Get returns the cached statistics. The second result reports whether
// a cached value was present.
func (c *StatisticsCache) Get(ctx context.Context) (services.Statistics, bool, error) {
	payload, err := c.client.Get(ctx, statisticsKey).Result()
	if err == redis.Nil {
		return services.Statistics{}, false, nil
	}
	if err != nil {
		return services.Statistics{}, false, errs.NewUpstreamFailureError("statistics cache read", err)
	}

	var dto statisticsDTO
	if err := json.Unmarshal([]byte(payload), &dto); err != nil {
		return services.Statistics{}, false, fmt.Errorf("unmarshal cached statistics: %w", err)
	}

	stats, err := fromDTO(dto)
	if err != nil {
		return services.Statistics{}, false, fmt.Errorf("restore cached statistics: %w", err)
	}

	return stats, true, nil
}

// Set stores the statistics under the cache TTL.
func (c *StatisticsCache) Set(ctx context.Context, stats services.Statistics) error {
	data, err := json.Marshal(toDTO(stats))
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}

	if err := c.client.Set(ctx, statisticsKey, data, c.ttl).Err(); err != nil {
		return errs.NewUpstreamFailureError("statistics cache write", err)
	}

	return nil
}

func toDTO(stats services.Statistics) statisticsDTO {
	byStatus := make(map[int]int, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		byStatus[int(status)] = count
	}

	daily := make([]dailyRevenueDTO, 0, len(stats.DailyRevenue))
	for _, day := range stats.DailyRevenue {
		daily = append(daily, dailyRevenueDTO{
			Date:         day.Date,
			RevenueCents: day.Revenue.Cents(),
			Orders:       day.Orders,
		})
	}

	return statisticsDTO{
		TotalOrders:            stats.TotalOrders,
		TotalRevenueCents:      stats.TotalRevenue.Cents(),
		AverageOrderValueCents: stats.AverageOrderValue.Cents(),
		OrdersByStatus:         byStatus,
		DailyRevenue:           daily,
	}
}

func fromDTO(dto statisticsDTO) (services.Statistics, error) {
	byStatus := make(map[order.Status]int, len(dto.OrdersByStatus))
	for code, count := range dto.OrdersByStatus {
		byStatus[order.Status(code)] = count
	}

	daily := make([]services.DailyRevenue, 0, len(dto.DailyRevenue))
	for _, day := range dto.DailyRevenue {
		revenue, err := kernel.NewMoneyFromCents(day.RevenueCents)
		if err != nil {
			return services.Statistics{}, err
		}
		daily = append(daily, services.DailyRevenue{
			Date:    day.Date,
			Revenue: revenue,
			Orders:  day.Orders,
		})
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalRevenueCents)
	if err != nil {
		return services.Statistics{}, err
	}

	average, err := kernel.NewMoneyFromCents(dto.AverageOrderValueCents)
	if err != nil {
		return services.Statistics{}, err
	}

	return services.Statistics{
		TotalOrders:       dto.TotalOrders,
		TotalRevenue:      total,
		AverageOrderValue: average,
		OrdersByStatus:    byStatus,
		DailyRevenue:      daily,
	}, nil
}
