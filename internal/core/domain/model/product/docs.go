// Package product provides the menu catalog entities of the food-delivery
// system: products (menu items) and extras (priced add-ons).
//
// Catalog entries are immutable once fetched. Orders reference them through
// line-item snapshots, so later catalog changes never alter the totals of
// an already created order.
package product
