// Package outboxrepo persists domain event messages written in the same
// transaction as the state change that produced them. A background dispatcher
// later relays unsent rows to the message broker.
package outboxrepo

import (
	"time"

	"ordering/internal/pkg/outbox"
)

// MessageDTO represents the database structure for outbox messages.
// Payload holds the serialized event exactly as it will be published.
type MessageDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"type:uuid;uniqueIndex"`
	EventType string
	Key       string
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromMessage(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:        message.ID,
		EventID:   message.EventID,
		EventType: message.EventType,
		Key:       message.Key,
		Payload:   message.Payload,
		CreatedAt: message.CreatedAt,
		SentAt:    message.SentAt,
	}
}

func toMessage(dto MessageDTO) outbox.Message {
	return outbox.Message{
		ID:        dto.ID,
		EventID:   dto.EventID,
		EventType: dto.EventType,
		Key:       dto.Key,
		Payload:   dto.Payload,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	}
}
