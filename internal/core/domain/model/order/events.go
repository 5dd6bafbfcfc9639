package order

import (
	"time"

	"github.com/google/uuid"

	"ordering/internal/core/domain/model/kernel"
)

// EventTypeOrderPlaced identifies the OrderPlaced domain event on the wire.
const EventTypeOrderPlaced = "order.placed"

// OrderPlacedEvent is the domain event published when a Draft order has been
// placed. It is recorded by the aggregate during Place and relayed to
// downstream consumers after the placement has been committed.
type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderPlacedEvent creates an OrderPlaced event for the given order.
func NewOrderPlacedEvent(orderID kernel.UUID) OrderPlacedEvent {
	return OrderPlacedEvent{
		EventID:    uuid.NewString(),
		OrderID:    orderID.String(),
		OccurredAt: time.Now().UTC(),
	}
}
