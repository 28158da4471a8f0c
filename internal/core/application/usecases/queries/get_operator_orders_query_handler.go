package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOperatorOrdersQueryHandler reads an operator's order portfolio
// from the assignments table.
//
// Example:
//
//	handler := NewGetOperatorOrdersQueryHandler(db)
//	query, _ := NewGetOperatorOrdersQuery(operator)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get operator orders: %v", err)
//	    return err
//	}
type GetOperatorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOperatorOrdersQueryHandler creates a handler for operator portfolio queries.
// Requires a GORM database connection for query execution.
func NewGetOperatorOrdersQueryHandler(db *gorm.DB) GetOperatorOrdersQueryHandler {
	return GetOperatorOrdersQueryHandler{db: db}
}

// Handle executes the query for one operator's orders.
// Results follow recording order. An unknown operator yields an empty slice.
func (h GetOperatorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOperatorOrdersQuery,
) ([]GetOperatorOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOperatorOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id
		FROM assignments
		WHERE operator = ?
		ORDER BY order_pos
	`, query.Operator().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOperatorOrdersQueryResponse

		if err = rows.Scan(&response.OrderID); err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
