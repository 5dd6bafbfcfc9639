package ports

import (
	"context"

	"ordering/internal/pkg/outbox"
)

// OutboxRepository defines the persistence contract for outbox messages.
// Add runs inside the caller's transaction; GetPending and MarkSent are used
// by the dispatcher outside any business transaction.
type OutboxRepository interface {
	// Add appends a pending message to the outbox.
	Add(ctx context.Context, message *outbox.Message) error

	// GetPending returns up to limit unsent messages in insertion order.
	GetPending(ctx context.Context, limit int) ([]outbox.Message, error)

	// MarkSent records that the message with the given ID has been published.
	MarkSent(ctx context.Context, id int64) error
}
