package ports

import (
	"context"

	"fleetbook/internal/core/domain/model/fleetorder"
)

// FleetOrderRepository defines the persistence contract for fleet order
// aggregates and their shipment containers. Orders are keyed by their
// registry-assigned number and persist indefinitely once created.
type FleetOrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *fleetorder.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *fleetorder.Order) error

	// Get retrieves an order aggregate by its registry-assigned number.
	// Returns errs.ErrObjectNotFound if no order with that number was ever shipped.
	Get(ctx context.Context, id int) (*fleetorder.Order, error)

	// GetFirstInRegisteredStatus retrieves the lowest-numbered order awaiting
	// operator assignment. Used by the assignment job to drain the
	// reservation queue in order.
	GetFirstInRegisteredStatus(ctx context.Context) (*fleetorder.Order, error)

	// GetAllInAssignedStatus retrieves all orders currently collecting
	// installments.
	GetAllInAssignedStatus(ctx context.Context) ([]*fleetorder.Order, error)

	// AddContainer persists a new shipment container record.
	AddContainer(ctx context.Context, container *fleetorder.Container) error

	// GetContainer retrieves a container by its sequential number.
	GetContainer(ctx context.Context, id int) (*fleetorder.Container, error)
}
