package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// Notifier sends customer-facing notifications. Delivery is best effort:
// the placement workflow logs failures but never rolls back a committed
// placement because a notification could not be sent.
type Notifier interface {
	// SendOrderConfirmation sends the order confirmation for a placed order.
	SendOrderConfirmation(ctx context.Context, placedOrder *order.Order) error
}
