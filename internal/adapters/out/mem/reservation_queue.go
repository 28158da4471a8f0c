package mem

import (
	"context"
	"sync"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
)

// ReservationQueue is an in-memory FIFO OperatorReservationQueue.
type ReservationQueue struct {
	mu      sync.Mutex
	waiting []kernel.Address
}

// NewReservationQueue creates an empty reservation queue.
func NewReservationQueue() *ReservationQueue {
	return &ReservationQueue{}
}

// Reserve enqueues an operator at the back of the queue.
func (q *ReservationQueue) Reserve(operator kernel.Address) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting = append(q.waiting, operator)
}

// Len returns the number of waiting reservations.
func (q *ReservationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.waiting)
}

// NextReservation pops the operator at the front of the queue.
// Returns ports.ErrNoReservation when the queue is empty.
func (q *ReservationQueue) NextReservation(_ context.Context) (kernel.Address, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.waiting) == 0 {
		return kernel.Address{}, ports.ErrNoReservation
	}

	next := q.waiting[0]
	q.waiting = q.waiting[1:]
	return next, nil
}

// Requeue puts an operator back at the front of the queue so they are the
// next to be drawn again.
func (q *ReservationQueue) Requeue(_ context.Context, operator kernel.Address) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting = append([]kernel.Address{operator}, q.waiting...)
	return nil
}
