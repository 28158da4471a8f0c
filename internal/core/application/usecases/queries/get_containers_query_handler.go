package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetContainersQueryHandler lists all shipping containers from the database.
//
// Example:
//
//	handler := NewGetContainersQueryHandler(db)
//	query := NewGetContainersQuery()
//
//	containers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get containers: %v", err)
//	    return err
//	}
type GetContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetContainersQueryHandler creates a handler for container listing queries.
// Requires a GORM database connection for query execution.
func NewGetContainersQueryHandler(db *gorm.DB) GetContainersQueryHandler {
	return GetContainersQueryHandler{db: db}
}

// Handle executes the query to list every container.
// Results are sorted by container ID for consistent output.
func (h GetContainersQueryHandler) Handle(
	ctx context.Context,
	query GetContainersQuery,
) ([]GetContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	containers := make([]GetContainersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_ref
		FROM containers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetContainersQueryResponse

		if err = rows.Scan(&response.ContainerID, &response.TrackingRef); err != nil {
			return nil, err
		}

		containers = append(containers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
