package queries

import (
	"errors"

	"fleetbook/internal/pkg/guard"
)

var (
	ErrGetContainersQueryIsNotConstructed = errors.New(
		"GetContainersQuery must be created via NewGetContainersQuery constructor",
	)
)

// GetContainersQuery retrieves every shipping container opened so far,
// with its carrier tracking reference.
//
// Example:
//
//	query := NewGetContainersQuery()
//	handler := NewGetContainersQueryHandler(db)
//
//	containers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get containers: %w", err)
//	}
//
//	for _, c := range containers {
//	    fmt.Printf("Container %d tracked as %s\n", c.ContainerID, c.TrackingRef)
//	}
type GetContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetContainersQuery creates a query to list all containers.
// This is a parameterless query.
func NewGetContainersQuery() GetContainersQuery {
	return GetContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetContainersQueryIsNotConstructed if validation fails.
func (q GetContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetContainersQueryIsNotConstructed)
}

// GetContainersQueryResponse represents one shipping container.
type GetContainersQueryResponse struct {
	ContainerID int
	TrackingRef string
}
