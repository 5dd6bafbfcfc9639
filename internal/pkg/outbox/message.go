// Package outbox defines the transactional outbox message format.
//
// Domain events are written to the outbox inside the same database
// transaction that persists the state change producing them. A background
// dispatcher later relays pending messages to the message broker and marks
// them sent. A committed state change can therefore never lose its event,
// at the cost of at-least-once delivery downstream.
package outbox

import (
	"encoding/json"
	"time"
)

// Message is a single event awaiting (or past) publication.
type Message struct {
	// ID is the store-assigned sequence number; dispatch order follows it.
	ID int64

	// EventID is the producer-assigned unique event identifier,
	// used by consumers for deduplication.
	EventID string

	// EventType names the event on the wire, e.g. "order.placed".
	EventType string

	// Key is the partitioning key for the broker, typically the aggregate ID.
	Key string

	// Payload is the JSON-encoded event body.
	Payload json.RawMessage

	// CreatedAt is when the message was written to the outbox.
	CreatedAt time.Time

	// SentAt is when the dispatcher published the message; nil while pending.
	SentAt *time.Time
}

// NewMessage builds a pending outbox message, JSON-encoding the event body.
func NewMessage(eventID, eventType, key string, event any) (Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Message{}, err
	}

	return Message{
		EventID:   eventID,
		EventType: eventType,
		Key:       key,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}, nil
}
