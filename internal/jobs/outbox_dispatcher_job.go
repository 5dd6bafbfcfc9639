package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const dispatchBatchSize = 50

// OutboxDispatcherJob relays committed domain events to the message broker.
// Runs every second, picking up outbox rows that have not been sent yet.
// A message is marked sent only after the broker accepts it, so a crash
// between publish and mark leads to redelivery, never to loss.
type OutboxDispatcherJob struct {
	outboxRepo ports.OutboxRepository
	publisher  ports.EventPublisher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOutboxDispatcherJob creates a new job for dispatching outbox messages.
// Uses the outbox repository to fetch pending messages and the event
// publisher to deliver them every second.
func NewOutboxDispatcherJob(
	outboxRepo ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		outboxRepo: outboxRepo,
		publisher:  publisher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the outbox dispatcher job to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatchPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the outbox dispatcher job.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// dispatchPending publishes pending messages in creation order. A publish
// failure stops the batch so ordering per key is preserved across retries.
func (j *OutboxDispatcherJob) dispatchPending(ctx context.Context) error {
	messages, err := j.outboxRepo.GetPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err = j.outboxRepo.MarkSent(ctx, message.ID); err != nil {
			return err
		}

		j.logger.InfoContext(ctx, "Outbox message dispatched",
			"event_id", message.EventID,
			"event_type", message.EventType,
		)
	}

	return nil
}
