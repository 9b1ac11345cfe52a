package product

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a menu item that customers can order.
// Products are immutable once fetched from the catalog: the client never
// mutates a product, it only references one from a line item.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Base price is non-negative (enforced by kernel.Money)
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name of the menu item
	name string

	// basePrice is the price before extras, in fixed-point cents
	basePrice kernel.Money

	// description optionally describes the menu item
	description string

	// category optionally groups menu items (e.g. "pizza", "burger")
	category string

	// available marks whether the item can currently be ordered
	available bool

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new available Product with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - basePrice: Non-negative price before extras
//
// Description and category are optional attributes set via RestoreProduct
// when loading from the catalog.
func NewProduct(id kernel.UUID, name string, basePrice kernel.Money) (*Product, error) {
	return RestoreProduct(id, name, basePrice, "", "", true)
}

// RestoreProduct reconstructs a Product from persistence, including its
// optional attributes and availability flag.
func RestoreProduct(
	id kernel.UUID,
	name string,
	basePrice kernel.Money,
	description string,
	category string,
	available bool,
) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}
	p.basePrice = basePrice

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// BasePrice returns the price before extras.
func (p *Product) BasePrice() kernel.Money {
	return p.basePrice
}

// Description returns the optional item description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the optional menu category.
func (p *Product) Category() string {
	return p.category
}

// Available reports whether the item can currently be ordered.
func (p *Product) Available() bool {
	return p.available
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}
