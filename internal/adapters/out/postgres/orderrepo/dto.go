// Package orderrepo provides data transfer objects and mapping functions for
// fleet order persistence. This package implements the repository pattern for
// the fleet order aggregate and its shipment containers, handling the
// conversion between domain entities and database representations.
package orderrepo

import (
	"fleetbook/internal/core/domain/model/fleetorder"
)

// OrderDTO represents the database structure for persisting fleet order
// aggregates. Indexed by status for the lifecycle scans the assignment and
// billing jobs run.
type OrderDTO struct {
	ID               int `gorm:"primaryKey;autoIncrement:false"`
	ContainerID      int `gorm:"index"`
	Status           int `gorm:"index"`
	InstallmentsPaid int
	Vin              string
	Plate            string
}

// TableName specifies the database table name for fleet order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ContainerDTO represents the database structure for shipment containers.
type ContainerDTO struct {
	ID          int `gorm:"primaryKey;autoIncrement:false"`
	TrackingRef string
}

// TableName specifies the database table name for container entities.
func (ContainerDTO) TableName() string {
	return "containers"
}

// fromDomain converts a fleet order domain aggregate to its database representation.
func fromDomain(order *fleetorder.Order) OrderDTO {
	return OrderDTO{
		ID:               order.ID(),
		ContainerID:      order.ContainerID(),
		Status:           int(order.Status()),
		InstallmentsPaid: order.InstallmentsPaid(),
		Vin:              order.Vin(),
		Plate:            order.Plate(),
	}
}

// toDomain converts a database DTO to a fleet order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*fleetorder.Order, error) {
	return fleetorder.RestoreOrder(
		dto.ID,
		dto.ContainerID,
		fleetorder.Status(dto.Status),
		dto.InstallmentsPaid,
		dto.Vin,
		dto.Plate,
	)
}

// containerFromDomain converts a container entity to its database representation.
func containerFromDomain(container *fleetorder.Container) ContainerDTO {
	return ContainerDTO{
		ID:          container.ID(),
		TrackingRef: container.TrackingRef(),
	}
}

// containerToDomain converts a database DTO to a container entity.
func containerToDomain(dto ContainerDTO) (*fleetorder.Container, error) {
	return fleetorder.NewContainer(dto.ID, dto.TrackingRef)
}
