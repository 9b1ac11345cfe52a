// Package services provides domain services for the food-delivery system:
// pure computations over domain entities that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - PricingPolicy: Deployment-configurable delivery fee and tax rate, with
//     the subtotal/total arithmetic for carts and orders
//   - Aggregate: Summary statistics (counts, revenue, averages, by-status and
//     per-day breakdowns) over an order collection
//   - ExcludeStatus: A stable filter splitting active from completed orders
//
// All operations are pure and side-effect-free so callers may recompute them
// on every poll without staleness concerns.
package services
