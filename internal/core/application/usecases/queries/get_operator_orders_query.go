package queries

import (
	"errors"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/guard"
)

var (
	ErrGetOperatorOrdersQueryIsNotConstructed = errors.New(
		"GetOperatorOrdersQuery must be created via NewGetOperatorOrdersQuery constructor",
	)
)

// GetOperatorOrdersQuery retrieves the orders an operator is recorded for,
// in the order they were recorded against that operator.
//
// Example:
//
//	query, err := NewGetOperatorOrdersQuery(operator)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOperatorOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get operator orders: %w", err)
//	}
type GetOperatorOrdersQuery struct {
	operator kernel.Address

	guard guard.ConstructorGuard
}

// NewGetOperatorOrdersQuery creates a query for an operator's order portfolio.
// The operator address must be constructed.
func NewGetOperatorOrdersQuery(operator kernel.Address) (GetOperatorOrdersQuery, error) {
	if err := operator.Validate(); err != nil {
		return GetOperatorOrdersQuery{}, err
	}

	return GetOperatorOrdersQuery{
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOperatorOrdersQueryIsNotConstructed if validation fails.
func (q GetOperatorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorOrdersQueryIsNotConstructed)
}

// Operator returns the queried operator address.
func (q GetOperatorOrdersQuery) Operator() kernel.Address {
	return q.operator
}

// GetOperatorOrdersQueryResponse represents one order in an operator's portfolio.
type GetOperatorOrdersQueryResponse struct {
	OrderID int
}
