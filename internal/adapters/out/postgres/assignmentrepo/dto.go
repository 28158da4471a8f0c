// Package assignmentrepo persists the operator assignment book. The book is
// stored flat, one row per (order, operator) entry, with both mirrored index
// positions so the bidirectional structure can be reconstructed exactly.
package assignmentrepo

import (
	"github.com/google/uuid"

	"fleetbook/internal/core/domain/model/assignment"
)

// AssignmentDTO represents one assignment book entry in the database.
// OperatorPos is the entry's index in the order's operator list; OrderPos is
// its index in the operator's order list.
type AssignmentDTO struct {
	OrderID     int       `gorm:"primaryKey;autoIncrement:false"`
	Operator    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	OperatorPos int
	OrderPos    int
}

// TableName specifies the database table name for assignment entries.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts a book entry to its database representation.
func fromDomain(entry assignment.Entry) AssignmentDTO {
	return AssignmentDTO{
		OrderID:     entry.OrderID,
		Operator:    entry.Operator.Bytes(),
		OperatorPos: entry.OperatorPos,
		OrderPos:    entry.OrderPos,
	}
}
