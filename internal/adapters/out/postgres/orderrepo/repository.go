package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFleetOrderRepository implements FleetOrderRepository using GORM.
type GormFleetOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormFleetOrderRepository creates a new GORM fleet order repository.
func NewGormFleetOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormFleetOrderRepository {
	return &GormFleetOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fleet order to the database.
func (r *GormFleetOrderRepository) Add(ctx context.Context, aggregate *fleetorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(orderKey(aggregate.ID()), aggregate)
	return nil
}

// Update saves an existing fleet order to the database.
func (r *GormFleetOrderRepository) Update(ctx context.Context, aggregate *fleetorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"container_id":      dto.ContainerID,
		"status":            dto.Status,
		"installments_paid": dto.InstallmentsPaid,
		"vin":               dto.Vin,
		"plate":             dto.Plate,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(orderKey(aggregate.ID()), aggregate)
	return nil
}

// Get retrieves a fleet order by its registry-assigned number.
func (r *GormFleetOrderRepository) Get(ctx context.Context, id int) (*fleetorder.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInRegisteredStatus retrieves the lowest-numbered order awaiting
// operator assignment.
func (r *GormFleetOrderRepository) GetFirstInRegisteredStatus(ctx context.Context) (*fleetorder.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Order("id").First(&dto, "status = ?", int(fleetorder.Registered)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in registered status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInAssignedStatus retrieves all orders currently collecting installments.
func (r *GormFleetOrderRepository) GetAllInAssignedStatus(ctx context.Context) ([]*fleetorder.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status = ?", int(fleetorder.Assigned)).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*fleetorder.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AddContainer saves a new shipment container to the database.
func (r *GormFleetOrderRepository) AddContainer(ctx context.Context, container *fleetorder.Container) error {
	if err := container.Validate(); err != nil {
		return err
	}

	dto := containerFromDomain(container)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetContainer retrieves a container by its sequential number.
func (r *GormFleetOrderRepository) GetContainer(ctx context.Context, id int) (*fleetorder.Container, error) {
	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", id)
		}
		return nil, err
	}

	return containerToDomain(dto)
}

func orderKey(id int) string {
	return "order/" + strconv.Itoa(id)
}
