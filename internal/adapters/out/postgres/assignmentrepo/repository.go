package assignmentrepo

import (
	"context"

	"gorm.io/gorm"

	"fleetbook/internal/core/domain/model/assignment"
	"fleetbook/internal/core/domain/model/kernel"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
// Get loads the complete entry set and rebuilds the book; Save rewrites the
// whole snapshot. The book is small (one row per operator assignment) and a
// full rewrite keeps both index directions trivially consistent.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Get loads the assignment book from storage. An empty table yields an
// empty book.
func (r *GormAssignmentRepository) Get(ctx context.Context) (*assignment.Book, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Order("order_id, operator_pos").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]assignment.Entry, 0, len(dtos))
	for _, dto := range dtos {
		operator, err := kernel.AddressFromBytes(dto.Operator[:])
		if err != nil {
			return nil, err
		}
		entries = append(entries, assignment.Entry{
			OrderID:     dto.OrderID,
			Operator:    operator,
			OperatorPos: dto.OperatorPos,
			OrderPos:    dto.OrderPos,
		})
	}

	return assignment.RestoreBook(entries)
}

// Save persists the book's complete entry set, replacing the previous snapshot.
func (r *GormAssignmentRepository) Save(ctx context.Context, book *assignment.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM assignments").Error; err != nil {
		return err
	}

	entries := book.Entries()
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]AssignmentDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, fromDomain(entry))
	}

	return db.Create(&dtos).Error
}
