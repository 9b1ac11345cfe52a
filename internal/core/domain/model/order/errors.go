package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order error taxonomy. Operations return wrapped
// instances of these so callers can classify failures with errors.Is.
var (
	// ErrInvalidTransition indicates a requested status change that is not
	// the unique successor of the current status, a requester without
	// permission, or a terminal current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidLineItem indicates a line item with quantity < 1, a negative
	// price, or an extra that is not part of the valid extra set.
	ErrInvalidLineItem = errors.New("invalid line item")

	// ErrEmptyOrder indicates an order submission with zero line items.
	ErrEmptyOrder = errors.New("order must contain at least one line item")
)

// InvalidTransitionError carries the context of a rejected lifecycle
// transition: the status the order was in and the role that requested the
// advance.
type InvalidTransitionError struct {
	From   Status
	Role   Role
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError with the
// rejected transition context.
func NewInvalidTransitionError(from Status, role Role, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:   from,
		Role:   role,
		Reason: reason,
	}
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot advance from %s as %s: %s",
		ErrInvalidTransition, e.From, e.Role, e.Reason)
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is classification.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NewInvalidLineItemError wraps a line-item validation failure with the
// ErrInvalidLineItem sentinel.
func NewInvalidLineItemError(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidLineItem, cause)
}
