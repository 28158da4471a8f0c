package queries

import (
	"errors"

	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves the lifecycle summary of a single fleet order.
// Returns the stored status, vehicle identity and installment progress.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(42)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//
//	fmt.Printf("Order %d is %s with %d installments paid\n",
//	    summary.OrderID, summary.Status, summary.InstallmentsPaid)
type GetOrderSummaryQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for a single order's summary.
// The order identifier must be positive.
func NewGetOrderSummaryQuery(orderID int) (GetOrderSummaryQuery, error) {
	if orderID <= 0 {
		return GetOrderSummaryQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderSummaryQuery) OrderID() int {
	return q.orderID
}

// GetOrderSummaryQueryResponse represents a fleet order's read model.
// The status is rendered as its string name for API consumers.
type GetOrderSummaryQueryResponse struct {
	OrderID          int
	ContainerID      int
	Status           string
	InstallmentsPaid int
	Vin              string
	Plate            string
}
