package services

import (
	"sort"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Statistics is the aggregate view over an order collection, recomputed on
// demand for the admin dashboard. It is derived data: never persisted, and
// safe to recompute on every poll because Aggregate is pure.
type Statistics struct {
	// TotalOrders is the number of orders in the collection.
	TotalOrders int

	// TotalRevenue is the sum of all order totals.
	TotalRevenue kernel.Money

	// AverageOrderValue is TotalRevenue / TotalOrders, zero when the
	// collection is empty.
	AverageOrderValue kernel.Money

	// OrdersByStatus maps every lifecycle state to its order count.
	// All five states are always present, including zero counts.
	OrdersByStatus map[order.Status]int

	// DailyRevenue groups orders by UTC calendar day of creation,
	// ascending by date.
	DailyRevenue []DailyRevenue
}

// DailyRevenue is one calendar-day bucket of the revenue series.
type DailyRevenue struct {
	// Date is the UTC midnight of the bucket's calendar day.
	Date time.Time

	// Revenue is the summed total of orders created that day.
	Revenue kernel.Money

	// Orders is the number of orders created that day.
	Orders int
}

// OrderFacts is the slice of an order that statistics need. *order.Order
// satisfies it, as do lightweight read-model rows on the query side, so
// callers never have to hydrate full aggregates just to count revenue.
type OrderFacts interface {
	Status() order.Status
	TotalAmount() kernel.Money
	CreatedAt() time.Time
}

// Aggregate computes Statistics over an order collection.
//
// The computation is pure and idempotent: no I/O, no hidden state, and
// repeated calls with the same input yield identical output, which lets a
// polling dashboard recompute freely.
//
// An empty collection yields zero totals, a zero average (never a division
// fault), all five statuses mapped to zero, and an empty daily series.
func Aggregate[T OrderFacts](orders []T) Statistics {
	stats := Statistics{
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[order.Status]int, len(order.AllStatuses())),
	}

	for _, status := range order.AllStatuses() {
		stats.OrdersByStatus[status] = 0
	}

	daily := make(map[time.Time]*DailyRevenue)
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount())
		stats.OrdersByStatus[o.Status()]++

		day := o.CreatedAt().UTC().Truncate(24 * time.Hour)
		bucket, ok := daily[day]
		if !ok {
			bucket = &DailyRevenue{Date: day}
			daily[day] = bucket
		}
		bucket.Revenue = bucket.Revenue.Add(o.TotalAmount())
		bucket.Orders++
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.DivBy(stats.TotalOrders)
	}

	stats.DailyRevenue = make([]DailyRevenue, 0, len(daily))
	for _, bucket := range daily {
		stats.DailyRevenue = append(stats.DailyRevenue, *bucket)
	}
	sort.Slice(stats.DailyRevenue, func(i, j int) bool {
		return stats.DailyRevenue[i].Date.Before(stats.DailyRevenue[j].Date)
	})

	return stats
}

// ExcludeStatus returns the orders whose status differs from the given
// one, preserving input order. Used to split active from completed orders
// in dashboard views. The input slice is never modified.
func ExcludeStatus[T OrderFacts](orders []T, status order.Status) []T {
	filtered := make([]T, 0, len(orders))
	for _, o := range orders {
		if o.Status() != status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
