package product

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrExtraIsNotConstructed is returned when an Extra instance was not created
	// through the NewExtra factory method.
	ErrExtraIsNotConstructed = errors.New("Extra must be created via NewExtra constructor")
)

// Extra represents an optional add-on with its own price, attachable to a
// line item (extra cheese, extra meat, and so on). Extras are immutable
// catalog entries.
type Extra struct {
	// id is the unique identifier for the extra
	id kernel.UUID

	// name is the display name of the add-on
	name string

	// price is the add-on price, in fixed-point cents
	price kernel.Money

	// category optionally groups add-ons by the products they apply to
	category string

	// isConstructed ensures the extra was created via NewExtra
	isConstructed bool
}

// NewExtra creates a new Extra with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - price: Non-negative add-on price
//   - category: Optional grouping, may be empty
func NewExtra(id kernel.UUID, name string, price kernel.Money, category string) (*Extra, error) {
	e := &Extra{
		category:      category,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
	); err != nil {
		return nil, err
	}
	e.price = price

	return e, nil
}

// Validate ensures the Extra instance was properly constructed.
func (e *Extra) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExtraIsNotConstructed
	}
	return nil
}

// IsEqual compares two extras by their unique identifiers.
func (e *Extra) IsEqual(other *Extra) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the extra's unique identifier.
func (e *Extra) ID() kernel.UUID {
	return e.id
}

// Name returns the extra's display name.
func (e *Extra) Name() string {
	return e.name
}

// Price returns the add-on price.
func (e *Extra) Price() kernel.Money {
	return e.price
}

// Category returns the optional grouping of the extra.
func (e *Extra) Category() string {
	return e.category
}

func (e *Extra) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Extra) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("extra name")
	}
	e.name = name
	return nil
}
