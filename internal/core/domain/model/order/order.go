package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from placement through preparation and transport
// to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer snapshot
//   - Must contain at least one line item (ErrEmptyOrder otherwise)
//   - Status only advances through the fixed forward sequence; it never regresses
//   - totalAmount is fixed at creation (subtotal + delivery fee + tax) and is
//     never mutated, only recomputed by the pricing service
//
// The backend owns the persisted order; this aggregate validates UI-initiated
// transitions before the update call is issued.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the immutable customer snapshot captured at creation
	customer Customer

	// items is the ordered sequence of line items
	items []LineItem

	// status is the current lifecycle state
	status Status

	// totalAmount is the total computed at creation time
	totalAmount kernel.Money

	// notes optionally carries free-text delivery instructions
	notes string

	// createdAt and updatedAt are the lifecycle timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the initial Received status.
//
// Parameters:
//   - id: Unique identifier assigned by the backend
//   - customer: Validated customer snapshot
//   - items: Line items (must not be empty, each constructed via NewLineItem)
//   - notes: Optional free-text notes, may be empty
//   - totalAmount: Order total computed by the pricing service at creation
//   - now: Creation timestamp, recorded as both createdAt and updatedAt
//
// Returns ErrEmptyOrder if items is empty, or a validation error if any
// component is invalid.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	notes string,
	totalAmount kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusReceived,
		notes:         notes,
		totalAmount:   totalAmount,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Used by repositories; validates the same invariants as NewOrder plus the
// stored status.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	status Status,
	totalAmount kernel.Money,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customer, items, notes, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the immutable customer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the ordered line items. The returned slice must not be mutated.
func (o *Order) Items() []LineItem {
	return o.items
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the total fixed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last lifecycle change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order to the unique successor of its current status,
// on behalf of the given requester role.
//
// This method enforces the following business rules:
//   - Delivered is terminal: no role may advance a delivered order
//   - The requester role must hold permission for the current status
//     (see CanAdvance); customers never progress orders
//
// On success the status becomes its successor and updatedAt is refreshed;
// the caller is responsible for persisting the change. On failure an
// InvalidTransitionError is returned and the order is left unchanged.
func (o *Order) Advance(requester Role, now time.Time) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	next, ok := o.status.Next()
	if !ok {
		return NewInvalidTransitionError(o.status, requester, "status is terminal")
	}

	if !CanAdvance(o.status, requester) {
		return NewInvalidTransitionError(o.status, requester, "role lacks permission")
	}

	o.status = next
	o.updatedAt = now
	return nil
}

// Summary renders a human-readable order summary with one line per item
// and the order total, for receipts and notifications.
func (o *Order) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order for %s:\n", o.customer.Name())
	for _, item := range o.items {
		fmt.Fprintf(&b, "- %dx %s", item.Quantity(), item.Product().Name())
		for _, extra := range item.Extras() {
			fmt.Fprintf(&b, " + %s", extra.Name())
		}
		fmt.Fprintf(&b, ": $%s\n", item.Total())
	}
	fmt.Fprintf(&b, "Total: $%s", o.totalAmount)
	return b.String()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
