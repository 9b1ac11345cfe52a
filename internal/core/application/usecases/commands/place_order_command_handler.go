package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Resolves the requested products and extras against the menu, prices the
// cart, and persists the order in "RECEIVED" status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, pricing, publisher)
//	cmd, _ := NewPlaceOrderCommand(orderID, name, phone, email, address, items, notes)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingPolicy
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the menu and order repositories, the
// deployment's pricing policy, and an event publisher for notifications.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingPolicy,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Loads each requested product and its extras from the catalog, builds the
// line items, computes the total via the pricing policy, and persists the
// order transactionally. After commit, a status-changed event is published
// best-effort: a publish failure is logged, never returned.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerEmail(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		p, getErr := menuRepo.GetProduct(ctx, spec.ProductID())
		if getErr != nil {
			return getErr
		}

		extras := make([]*product.Extra, 0, len(spec.ExtraIDs()))
		for _, extraID := range spec.ExtraIDs() {
			extra, extraErr := menuRepo.GetExtra(ctx, extraID)
			if extraErr != nil {
				return extraErr
			}
			extras = append(extras, extra)
		}

		item, itemErr := order.NewLineItem(p, extras, spec.Quantity())
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		customer,
		items,
		cmd.Notes(),
		h.pricing.OrderTotal(items),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
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
