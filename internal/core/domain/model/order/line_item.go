package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an improperly
// initialized LineItem. Line items must be created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product selection within an order: a product, the chosen
// extras, and a quantity. The referenced product and extras are catalog
// snapshots taken at order-creation time, so a line item's total never
// changes after the order is placed.
//
// LineItem follows these invariants:
//   - quantity >= 1
//   - the product is a valid, available catalog entry
//   - extras form a set: no extra appears twice
//
// Violations are rejected with ErrInvalidLineItem, never normalized away.
type LineItem struct { //nolint:recvcheck //using for validation
	product  *product.Product
	extras   []*product.Extra
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - p: The ordered product (must be valid and available)
//   - extras: Chosen add-ons, already resolved against the valid extra set
//   - quantity: Number of units (must be >= 1)
//
// Returns ErrInvalidLineItem (wrapped) if any invariant is violated.
func NewLineItem(p *product.Product, extras []*product.Extra, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(p),
		item.setExtras(extras),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks if the LineItem was properly constructed via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Product returns the ordered product snapshot.
func (li LineItem) Product() *product.Product {
	return li.product
}

// Extras returns the chosen add-ons. The returned slice must not be mutated.
func (li LineItem) Extras() []*product.Extra {
	return li.extras
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns the line total:
//
//	(basePrice + sum of extra prices) * quantity
//
// The computation stays in integer cents; no rounding occurs.
func (li LineItem) Total() kernel.Money {
	unit := li.product.BasePrice()
	for _, extra := range li.extras {
		unit = unit.Add(extra.Price())
	}
	return unit.MulQuantity(li.quantity)
}

func (li *LineItem) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return NewInvalidLineItemError(err)
	}
	if !p.Available() {
		return NewInvalidLineItemError(fmt.Errorf("product %q is not available", p.Name()))
	}
	li.product = p
	return nil
}

func (li *LineItem) setExtras(extras []*product.Extra) error {
	seen := make(map[kernel.UUID]struct{}, len(extras))
	for _, extra := range extras {
		if err := extra.Validate(); err != nil {
			return NewInvalidLineItemError(err)
		}
		if _, ok := seen[extra.ID()]; ok {
			return NewInvalidLineItemError(fmt.Errorf("extra %q selected twice", extra.Name()))
		}
		seen[extra.ID()] = struct{}{}
	}
	li.extras = extras
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return NewInvalidLineItemError(fmt.Errorf("quantity %d is less than 1", quantity))
	}
	li.quantity = quantity
	return nil
}
