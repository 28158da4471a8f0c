// Package eventlog provides an EventPublisher that writes events to a
// structured logger. Used when no broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"fleetbook/internal/core/application/events"
)

// Publisher logs each event instead of shipping it anywhere.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a logging publisher. A nil logger falls back to
// slog.Default().
func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger}
}

// Publish logs the event at info level.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.logger.InfoContext(ctx, "domain event",
		slog.String("event", event.Name()),
		slog.String("key", event.Key()),
		slog.Any("payload", event),
	)
	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
