// Package kafka publishes domain event messages to Kafka topics.
package kafka

import (
	"context"
	"time"

	"ordering/internal/pkg/outbox"

	"github.com/segmentio/kafka-go"
)

// Publisher implements EventPublisher on top of a kafka-go writer.
// Messages are keyed by the outbox message key (the order ID), so all events
// of one order land in the same partition and keep their relative order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// Publish sends one outbox message. The payload was serialized when the
// message was written to the outbox, so it goes out byte for byte as stored.
func (p *Publisher) Publish(ctx context.Context, message outbox.Message) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  message.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(message.EventID)},
			{Key: "event_type", Value: []byte(message.EventType)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
