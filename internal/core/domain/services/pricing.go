package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Default pricing values used when a deployment provides no overrides.
const (
	DefaultDeliveryFee = "5.00"
	DefaultTaxRate     = "0.10"
)

// PricingPolicy carries the deployment-specific pricing rules: the flat
// delivery fee and the tax rate. Business rules vary by deployment, so both
// values come from configuration rather than constants.
//
// Tax applies to the subtotal only, never to the delivery fee. If a
// deployment must tax the fee as well, that is a behavior change of
// OrderTotal, not a bug fix.
type PricingPolicy struct {
	DeliveryFee kernel.Money
	TaxRate     decimal.Decimal
}

// DefaultPricingPolicy returns the standard policy: 5.00 delivery fee and
// a 10% tax rate.
func DefaultPricingPolicy() PricingPolicy {
	fee, _ := kernel.MoneyFromString(DefaultDeliveryFee)
	rate, _ := decimal.NewFromString(DefaultTaxRate)
	return PricingPolicy{
		DeliveryFee: fee,
		TaxRate:     rate,
	}
}

// NewPricingPolicy builds a policy from configuration strings, e.g.
// "5.00" and "0.10". Empty strings fall back to the defaults.
func NewPricingPolicy(deliveryFee string, taxRate string) (PricingPolicy, error) {
	policy := DefaultPricingPolicy()

	if deliveryFee != "" {
		fee, err := kernel.MoneyFromString(deliveryFee)
		if err != nil {
			return PricingPolicy{}, err
		}
		policy.DeliveryFee = fee
	}

	if taxRate != "" {
		rate, err := decimal.NewFromString(taxRate)
		if err != nil {
			return PricingPolicy{}, err
		}
		policy.TaxRate = rate
	}

	return policy, nil
}

// Subtotal sums the line totals of the given items. An empty sequence
// yields zero. The computation stays in integer cents; no rounding occurs.
func Subtotal(items []order.LineItem) kernel.Money {
	var subtotal kernel.Money
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// OrderTotal computes the amount a customer pays for the given items:
//
//	subtotal + deliveryFee + subtotal * taxRate
//
// The formula is applied as-is; submission-level rules such as rejecting
// empty orders belong to the Order aggregate, not to pricing.
func (p PricingPolicy) OrderTotal(items []order.LineItem) kernel.Money {
	subtotal := Subtotal(items)
	return subtotal.Add(p.DeliveryFee).Add(p.Tax(subtotal))
}

// Tax returns the tax charged on a subtotal, rounded half away from zero
// to the nearest cent.
func (p PricingPolicy) Tax(subtotal kernel.Money) kernel.Money {
	return subtotal.ApplyRate(p.TaxRate)
}
