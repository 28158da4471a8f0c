package ports

import (
	"context"

	"fleetbook/internal/core/application/events"
)

// EventPublisher pushes domain events to the outside world. Publication is
// best-effort after state is committed; a publish failure never rolls a
// handler back.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	Close() error
}
