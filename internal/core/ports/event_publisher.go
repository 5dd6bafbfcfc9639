package ports

import (
	"context"

	"ordering/internal/pkg/outbox"
)

// EventPublisher delivers outbox messages to downstream consumers.
// Used by the outbox dispatcher; the placement workflow itself never
// publishes directly.
type EventPublisher interface {
	// Publish sends a single message. A nil return means the broker
	// acknowledged it and the message may be marked sent.
	Publish(ctx context.Context, message outbox.Message) error
}
