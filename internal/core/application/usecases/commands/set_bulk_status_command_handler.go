package commands

import (
	"context"
	"errors"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/pkg/errs"
)

var (
	// ErrContainerIsEmpty is returned when the container's derived id range
	// contains no orders.
	ErrContainerIsEmpty = errors.New("container id range is empty")

	// ErrBatchTooLarge is returned when the derived id range exceeds the
	// registry's per-container maximum.
	ErrBatchTooLarge = errors.New("batch size exceeds per-container maximum")

	// ErrDuplicateOrderIDs is returned when the batch contains the same id twice.
	ErrDuplicateOrderIDs = errors.New("duplicate order ids in batch")

	// ErrOrderNotShipped is returned when a batch id has never been shipped
	// and therefore has no baseline status to transition from.
	ErrOrderNotShipped = errors.New("order has not been shipped")
)

// SetBulkStatusCommandHandler moves every order of a container to one status
// with all-or-nothing semantics. The whole batch is validated before any
// order is mutated; a single failing id fails the call with zero writes.
//
// Example:
//
//	handler := NewSetBulkStatusCommandHandler(uowFactory, registry, publisher)
//	cmd, _ := NewSetBulkStatusCommand(capability, 1, int(fleetorder.Arrived))
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDuplicateOrderIDs) {
//	    log.Println("registry produced an inconsistent id range")
//	}
type SetBulkStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   ports.OwnershipRegistry
	publisher  ports.EventPublisher
}

// NewSetBulkStatusCommandHandler creates a handler for bulk status moves.
func NewSetBulkStatusCommandHandler(
	uowFactory OrderUoWFactory,
	registry ports.OwnershipRegistry,
	publisher ports.EventPublisher,
) SetBulkStatusCommandHandler {
	return SetBulkStatusCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		publisher:  publisher,
	}
}

// Handle processes the bulk status command in two phases. Validation: derive
// the container's id range from the registry's cumulative counts, reject
// empty ranges, oversized batches, duplicate ids, a malformed status value,
// and any id whose stored status cannot transition to the proposed one (a
// never-shipped id has no baseline and always fails). Commit: only after
// every check passes, set each order's status in one transaction and publish
// a status-changed event per order.
func (h SetBulkStatusCommandHandler) Handle(ctx context.Context, command SetBulkStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.RoleSuperAdmin) {
		return ErrPermissionDenied
	}

	ids, err := h.deriveOrderIDs(ctx, command.ContainerID())
	if err != nil {
		return err
	}

	maxPerContainer, err := h.registry.MaxOrdersPerContainer(ctx)
	if err != nil {
		return err
	}
	if len(ids) > maxPerContainer {
		return ErrBatchTooLarge
	}

	if containsDuplicates(ids) {
		return ErrDuplicateOrderIDs
	}

	next := fleetorder.Status(command.RawStatus())
	if err = next.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.FleetOrderRepository()

	orders := make([]*fleetorder.Order, 0, len(ids))
	lockPeriods := make([]int, 0, len(ids))
	for _, id := range ids {
		order, getErr := orderRepo.Get(ctx, id)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return ErrOrderNotShipped
		}
		if getErr != nil {
			return getErr
		}

		lockPeriod := 0
		if next == fleetorder.Transferred {
			if lockPeriod, getErr = h.registry.LockPeriod(ctx, id); getErr != nil {
				return getErr
			}
		}

		if getErr = order.ValidateTransition(next, lockPeriod); getErr != nil {
			return getErr
		}
		orders = append(orders, order)
		lockPeriods = append(lockPeriods, lockPeriod)
	}

	previous := make([]fleetorder.Status, 0, len(orders))
	for i, order := range orders {
		previous = append(previous, order.Status())

		if err = order.SetStatus(next, lockPeriods[i]); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for i, order := range orders {
		_ = h.publisher.Publish(ctx,
			events.NewStatusChanged(order.ID(), previous[i], next))
	}

	return nil
}

// deriveOrderIDs resolves the container's id range from the registry's
// cumulative counts: (count(container-1), count(container)].
func (h SetBulkStatusCommandHandler) deriveOrderIDs(ctx context.Context, containerID int) ([]int, error) {
	upper, err := h.registry.ContainerCumulativeCount(ctx, containerID)
	if err != nil {
		return nil, err
	}
	prev, err := h.registry.ContainerCumulativeCount(ctx, containerID-1)
	if err != nil {
		return nil, err
	}
	if upper <= prev {
		return nil, ErrContainerIsEmpty
	}

	ids := make([]int, 0, upper-prev)
	for id := prev + 1; id <= upper; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

// containsDuplicates scans the batch pairwise. Quadratic, acceptable for
// per-container batch sizes; guards against inconsistent registry counts.
func containsDuplicates(ids []int) bool {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return true
			}
		}
	}
	return false
}
