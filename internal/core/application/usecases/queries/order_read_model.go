package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// itemRef locates an assembled line item so extras can be attached to it.
type itemRef struct {
	orderIdx int
	itemIdx  int
}

// readOrders loads order read models with their items and extras.
// The optional condition/args pair narrows the orders select; items and
// extras are fetched in two follow-up queries keyed by the returned ids,
// keeping the assembly at three round trips regardless of result size.
func readOrders(ctx context.Context, db *gorm.DB, condition string, args ...any) ([]OrderResponse, error) {
	orders, orderIndex, err := readOrderRows(ctx, db, condition, args...)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, resp := range orders {
		orderIDs = append(orderIDs, resp.ID.Bytes())
	}

	itemIndex, err := readItemRows(ctx, db, orders, orderIndex, orderIDs)
	if err != nil {
		return nil, err
	}

	if len(itemIndex) > 0 {
		if err = readExtraRows(ctx, db, orders, itemIndex); err != nil {
			return nil, err
		}
	}

	// Line totals need the extras, so they are filled in last.
	for oi := range orders {
		for ii := range orders[oi].Items {
			item := &orders[oi].Items[ii]

			perUnit := item.UnitPrice
			for _, extra := range item.Extras {
				perUnit = perUnit.Add(extra.Price)
			}
			item.LineTotal = perUnit.MulQuantity(item.Quantity)
		}
	}

	return orders, nil
}

func readOrderRows(
	ctx context.Context,
	db *gorm.DB,
	condition string,
	args ...any,
) ([]OrderResponse, map[uuid.UUID]int, error) {
	query := `
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_email,
			delivery_address,
			status,
			total_cents,
			notes,
			created_at,
			updated_at
		FROM orders
	`
	if condition != "" {
		query += " WHERE " + condition
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, errs.NewUpstreamFailureError("query orders", err)
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIndex := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id         uuid.UUID
			status     int
			totalCents int64
			createdAt  time.Time
			updatedAt  time.Time
			resp       OrderResponse
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.CustomerEmail,
			&resp.DeliveryAddress,
			&status,
			&totalCents,
			&resp.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, nil, errs.NewUpstreamFailureError("scan order row", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		total, moneyErr := kernel.NewMoneyFromCents(totalCents)
		if moneyErr != nil {
			return nil, nil, moneyErr
		}

		resp.ID = orderID
		resp.Status = order.Status(status)
		resp.Total = total
		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		resp.Items = make([]OrderItemResponse, 0)

		orderIndex[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, errs.NewUpstreamFailureError("query orders", err)
	}

	return orders, orderIndex, nil
}

func readItemRows(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	orderIndex map[uuid.UUID]int,
	orderIDs []uuid.UUID,
) (map[uuid.UUID]itemRef, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			unit_price_cents,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return nil, errs.NewUpstreamFailureError("query order items", err)
	}
	defer rows.Close()

	itemIndex := make(map[uuid.UUID]itemRef)

	for rows.Next() {
		var (
			id             uuid.UUID
			orderID        uuid.UUID
			productID      uuid.UUID
			unitPriceCents int64
			item           OrderItemResponse
		)

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&item.ProductName,
			&unitPriceCents,
			&item.Quantity,
		)
		if err != nil {
			return nil, errs.NewUpstreamFailureError("scan order item row", err)
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		unitPrice, moneyErr := kernel.NewMoneyFromCents(unitPriceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		item.ProductID = pid
		item.UnitPrice = unitPrice
		item.Extras = make([]OrderExtraResponse, 0)

		orderIdx, ok := orderIndex[orderID]
		if !ok {
			continue
		}

		itemIndex[id] = itemRef{orderIdx: orderIdx, itemIdx: len(orders[orderIdx].Items)}
		orders[orderIdx].Items = append(orders[orderIdx].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUpstreamFailureError("query order items", err)
	}

	return itemIndex, nil
}

func readExtraRows(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	itemIndex map[uuid.UUID]itemRef,
) error {
	itemIDs := make([]uuid.UUID, 0, len(itemIndex))
	for id := range itemIndex {
		itemIDs = append(itemIDs, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_item_id,
			extra_id,
			name,
			price_cents
		FROM order_item_extras
		WHERE order_item_id IN ?
		ORDER BY order_item_id, extra_id
	`, itemIDs).Rows()
	if err != nil {
		return errs.NewUpstreamFailureError("query order item extras", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID     uuid.UUID
			extraID    uuid.UUID
			priceCents int64
			extra      OrderExtraResponse
		)

		err = rows.Scan(&itemID, &extraID, &extra.Name, &priceCents)
		if err != nil {
			return errs.NewUpstreamFailureError("scan order item extra row", err)
		}

		eid, idErr := kernel.UUIDFromBytes(extraID[:])
		if idErr != nil {
			return idErr
		}

		price, moneyErr := kernel.NewMoneyFromCents(priceCents)
		if moneyErr != nil {
			return moneyErr
		}

		extra.ExtraID = eid
		extra.Price = price

		ref, ok := itemIndex[itemID]
		if !ok {
			continue
		}

		item := &orders[ref.orderIdx].Items[ref.itemIdx]
		item.Extras = append(item.Extras, extra)
	}

	if err = rows.Err(); err != nil {
		return errs.NewUpstreamFailureError("query order item extras", err)
	}

	return nil
}
