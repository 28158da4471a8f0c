// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"

	skafka "github.com/segmentio/kafka-go"

	"fleetbook/internal/core/application/events"
)

// Writer defines the subset of the segmentio kafka.Writer we need.
// This makes the publisher testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher wraps a kafka writer into a ports.EventPublisher. Events are
// serialized as JSON; the event key keeps all events of one order on the
// same partition, and the event name travels in a message header.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a Publisher writing to the given broker and topic.
func NewPublisher(brokerURL, topic string) *Publisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &Publisher{writer: w}
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// Publish marshals the event to JSON and writes one kafka message.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := skafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Headers: []skafka.Header{
			{Key: "event", Value: []byte(event.Name())},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
