package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
)

// AdvanceOrderCommandHandler handles the business logic for order status
// advancement. Loads the order, delegates the role-gated transition to the
// aggregate, and persists the new state.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAdvanceOrderCommand(orderID, order.RoleDelivery)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, order.ErrInvalidTransition) {
//	        // requester not allowed, or order already delivered
//	    }
//	    return err
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
// Requires an OrderUoWFactory for transactional persistence and an event
// publisher for status-change notifications.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order advancement command.
// The transition itself is performed by Order.Advance, which enforces the
// permission table and terminal-state rules; a rejected transition leaves
// the stored order untouched. After commit, a status-changed event is
// published best-effort.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.Role(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
