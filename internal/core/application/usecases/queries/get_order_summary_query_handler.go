package queries

import (
	"context"

	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads a single order's lifecycle summary
// straight from the database, bypassing the aggregate.
//
// Example:
//
//	handler := NewGetOrderSummaryQueryHandler(db)
//	query, _ := NewGetOrderSummaryQuery(42)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order summary: %v", err)
//	    return err
//	}
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns errs.ErrObjectNotFound when no order with the requested ID exists.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			container_id,
			status,
			installments_paid,
			vin,
			plate
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderSummaryQueryResponse{}, err
		}
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var response GetOrderSummaryQueryResponse
	var rawStatus int

	err = rows.Scan(
		&response.OrderID,
		&response.ContainerID,
		&rawStatus,
		&response.InstallmentsPaid,
		&response.Vin,
		&response.Plate,
	)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	response.Status = fleetorder.Status(rawStatus).String()

	return response, nil
}
