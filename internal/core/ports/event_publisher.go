package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order lifecycle
// progress. Publishing is best-effort: the command handlers log and swallow
// publish failures rather than roll back a committed state change.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event carrying the order's id and its
	// new status.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error

	// Close releases the underlying transport.
	Close() error
}
