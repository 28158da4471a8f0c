package ports

import (
	"context"

	"fleetbook/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for the operator
// assignment book. The book is a single global structure: Get loads it in
// full and Save persists the complete entry set, keeping both directions of
// the bidirectional index in one consistent snapshot.
type AssignmentRepository interface {
	// Get loads the assignment book. An empty store yields an empty book.
	Get(ctx context.Context) (*assignment.Book, error)

	// Save persists the book's complete entry set, replacing the previous
	// snapshot.
	Save(ctx context.Context, book *assignment.Book) error
}
