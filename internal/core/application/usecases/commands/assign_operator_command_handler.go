package commands

import (
	"context"
	"errors"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
)

// ErrNoOperatorReserved is returned when the reservation queue has no
// operator waiting.
var ErrNoOperatorReserved = errors.New("no operator reservation available")

// AssignOperatorCommandHandler matches a registered order with the next
// operator from the FIFO reservation queue. Records both directions of the
// assignment book and moves the order to Assigned in one transaction.
// A duplicate assignment (operator already recorded for the order) fails
// with the book untouched.
//
// Example:
//
//	handler := NewAssignOperatorCommandHandler(uowFactory, queue, publisher)
//	cmd, _ := NewAssignOperatorCommand(capability, 1)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOperatorReserved):
//	    log.Println("No operator waiting")
//	case errors.Is(err, assignment.ErrOperatorAlreadyRecorded):
//	    log.Println("Queue returned an operator already on this order")
//	}
type AssignOperatorCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.OperatorReservationQueue
	publisher  ports.EventPublisher
}

// NewAssignOperatorCommandHandler creates a handler for operator assignment.
func NewAssignOperatorCommandHandler(
	uowFactory UoWFactory,
	queue ports.OperatorReservationQueue,
	publisher ports.EventPublisher,
) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// Requires the order in Registered status, draws the next reservation,
// rejects duplicates via the book's O(1) index, then persists the order and
// the book together. Publishes assignment and status-changed events.
func (h AssignOperatorCommandHandler) Handle(ctx context.Context, command AssignOperatorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.RoleSuperAdmin) {
		return ErrPermissionDenied
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.FleetOrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if order.Status() != fleetorder.Registered {
		return fleetorder.ErrOrderNotRegistered
	}

	operator, err := h.queue.NextReservation(ctx)
	if errors.Is(err, ports.ErrNoReservation) {
		return ErrNoOperatorReserved
	}
	if err != nil {
		return err
	}

	// The draw consumed the reservation. Any failure from here on puts the
	// operator back at the front of the queue so a retry draws them again.
	if err = h.commitAssignment(ctx, uow, order, operator); err != nil {
		_ = h.queue.Requeue(ctx, operator)
		return err
	}

	_ = h.publisher.Publish(ctx, events.NewOperatorAssigned(order.ID(), operator))
	_ = h.publisher.Publish(ctx,
		events.NewStatusChanged(order.ID(), fleetorder.Registered, fleetorder.Assigned))

	return nil
}

func (h AssignOperatorCommandHandler) commitAssignment(
	ctx context.Context,
	uow UoW,
	order *fleetorder.Order,
	operator kernel.Address,
) error {
	book, err := uow.AssignmentRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = book.Record(order.ID(), operator); err != nil {
		return err
	}

	if err = order.MarkAssigned(); err != nil {
		return err
	}

	if err = uow.FleetOrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Save(ctx, book); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
