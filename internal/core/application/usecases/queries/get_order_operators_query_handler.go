package queries

import (
	"context"

	"fleetbook/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderOperatorsQueryHandler reads the operator roster of one order
// from the assignments table.
//
// Example:
//
//	handler := NewGetOrderOperatorsQueryHandler(db)
//	query, _ := NewGetOrderOperatorsQuery(42)
//
//	operators, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get operators: %v", err)
//	    return err
//	}
type GetOrderOperatorsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderOperatorsQueryHandler creates a handler for operator roster queries.
// Requires a GORM database connection for query execution.
func NewGetOrderOperatorsQueryHandler(db *gorm.DB) GetOrderOperatorsQueryHandler {
	return GetOrderOperatorsQueryHandler{db: db}
}

// Handle executes the query for one order's operators.
// Results follow recording order. An order without operators yields an empty slice.
func (h GetOrderOperatorsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderOperatorsQuery,
) ([]GetOrderOperatorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	operators := make([]GetOrderOperatorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			operator
		FROM assignments
		WHERE order_id = ?
		ORDER BY operator_pos
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw uuid.UUID

		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		operator, addrErr := kernel.AddressFromBytes(raw[:])
		if addrErr != nil {
			return nil, addrErr
		}

		operators = append(operators, GetOrderOperatorsQueryResponse{Operator: operator})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operators, nil
}
