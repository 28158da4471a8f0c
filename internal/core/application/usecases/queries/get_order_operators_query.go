package queries

import (
	"errors"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var (
	ErrGetOrderOperatorsQueryIsNotConstructed = errors.New(
		"GetOrderOperatorsQuery must be created via NewGetOrderOperatorsQuery constructor",
	)
)

// GetOrderOperatorsQuery retrieves the operators recorded for one fleet order,
// in the order they were recorded.
//
// Example:
//
//	query, err := NewGetOrderOperatorsQuery(42)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderOperatorsQueryHandler(db)
//
//	operators, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order operators: %w", err)
//	}
type GetOrderOperatorsQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderOperatorsQuery creates a query for an order's operator roster.
// The order identifier must be positive.
func NewGetOrderOperatorsQuery(orderID int) (GetOrderOperatorsQuery, error) {
	if orderID <= 0 {
		return GetOrderOperatorsQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderOperatorsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderOperatorsQueryIsNotConstructed if validation fails.
func (q GetOrderOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOperatorsQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderOperatorsQuery) OrderID() int {
	return q.orderID
}

// GetOrderOperatorsQueryResponse represents one operator recorded for an order.
type GetOrderOperatorsQueryResponse struct {
	Operator kernel.Address
}
