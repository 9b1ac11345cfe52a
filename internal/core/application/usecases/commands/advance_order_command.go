package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a request to move an order one step forward
// in its lifecycle, on behalf of a specific requester role. Whether the role
// may perform the step is decided by the Order aggregate, not here.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.RoleRestaurant)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to advance order: %w", err)
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
// Validates that the order id and the requester role are valid.
func NewAdvanceOrderCommand(orderID kernel.UUID, role order.Role) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRole(role),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the role on whose behalf the advancement is requested.
func (c AdvanceOrderCommand) Role() order.Role {
	return c.role
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
