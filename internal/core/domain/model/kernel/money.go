package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// centsPerUnit is the fixed-point scale for all monetary amounts.
const centsPerUnit = 100

// Money represents a non-negative monetary amount in fixed-point cents.
// All arithmetic on prices and totals happens in integer cents; conversion
// to a two-decimal representation happens only at the presentation boundary.
//
// Money is an immutable value object. The zero value is a valid amount of
// zero, which makes Money safe to use as an accumulator:
//
//	var total kernel.Money
//	for _, item := range items {
//	    total = total.Add(item.Total())
//	}
//
// Negative amounts are rejected at construction — callers must treat a
// negative price as an input error, never clamp it.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount expressed in cents.
// Returns an error if cents is negative.
//
// Example:
//
//	price, err := kernel.NewMoneyFromCents(850) // 8.50
//	if err != nil {
//	    // handle negative amount
//	}
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromDecimal creates a Money from a base-10 fixed-point number,
// the format monetary values use on the wire. Amounts with more than two
// decimal places are rejected rather than silently rounded.
//
// Example:
//
//	price, err := kernel.NewMoneyFromDecimal(decimal.NewFromFloat(8.50))
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Mul(decimal.NewFromInt(centsPerUnit))
	if !scaled.IsInteger() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s has more than two decimal places", d.String()),
		)
	}
	return NewMoneyFromCents(scaled.IntPart())
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "5.00". Used for configuration values and wire input.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoneyFromDecimal(d)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as an exact two-decimal fixed-point number.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts. Overflow is not modeled; order totals
// stay far below the int64 range.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
// The quantity must already be validated as positive by the caller.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// ApplyRate returns the amount multiplied by a decimal rate (e.g. a tax
// rate of 0.10), rounded half away from zero to the nearest cent. This is
// the single place where rounding can occur in pricing arithmetic.
//
// Example:
//
//	subtotal, _ := kernel.MoneyFromString("21.00")
//	tax := subtotal.ApplyRate(decimal.NewFromFloat(0.10)) // 2.10
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	cents := decimal.NewFromInt(m.cents).Mul(rate).Round(0).IntPart()
	return Money{cents: cents}
}

// DivBy returns the amount divided by a positive count, rounded half away
// from zero to the nearest cent. Used for average-order-value computation.
func (m Money) DivBy(count int) Money {
	if count <= 0 {
		return Money{}
	}
	cents := decimal.NewFromInt(m.cents).
		Div(decimal.NewFromInt(int64(count))).
		Round(0).
		IntPart()
	return Money{cents: cents}
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the display representation with exactly two decimal
// places, e.g. "28.10". This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
