package outboxrepo

import (
	"context"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/outbox"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores a new outbox message. Called within the business transaction so
// the message is committed atomically with the aggregate change.
func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if message == nil {
		return errs.NewValueIsRequiredError("message")
	}

	dto := fromMessage(message)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	message.ID = dto.ID
	return nil
}

// GetPending returns up to limit unsent messages in creation order.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toMessage(dto))
	}

	return messages, nil
}

// MarkSent records that the message with the given ID has been published.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ? AND sent_at IS NULL", id).
		Update("sent_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id)
	}

	return nil
}
