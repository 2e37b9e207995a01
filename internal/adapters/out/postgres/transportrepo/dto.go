// Package transportrepo provides data transfer objects and mapping functions
// for transportation persistence. It implements the repository pattern for the
// Transportation aggregate, handling conversion between the domain model and
// its relational representation.
package transportrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"

	"github.com/google/uuid"
)

// TransportationDTO represents the database structure for persisting
// transportation bookings. The driver and vehicle columns are indexed together
// with the scheduled window because the overlap scan always filters on
// resource id plus window bounds.
type TransportationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID        uuid.UUID `gorm:"type:uuid;index"`
	DriverID      uuid.UUID `gorm:"type:uuid;index:idx_transportations_driver_window"`
	VehicleID     uuid.UUID `gorm:"type:uuid;index:idx_transportations_vehicle_window"`
	FromStorageID uuid.UUID `gorm:"type:uuid;index"`
	ToStorageID   uuid.UUID `gorm:"type:uuid;index"`

	// Both scheduled bounds are set for a scheduled booking, both NULL for an
	// unscheduled one. The repository never persists one without the other.
	ScheduledDeparture *time.Time `gorm:"index:idx_transportations_driver_window;index:idx_transportations_vehicle_window"`
	ScheduledArrival   *time.Time

	ActualDeparture *time.Time
	ActualArrival   *time.Time

	Status    int `gorm:"index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (TransportationDTO) TableName() string {
	return "transportations"
}

// fromDomain converts the aggregate to its database representation.
func fromDomain(aggregate *transportation.Transportation) TransportationDTO {
	var scheduledDeparture, scheduledArrival *time.Time
	if w := aggregate.Window(); w != nil {
		start, end := w.Start(), w.End()
		scheduledDeparture = &start
		scheduledArrival = &end
	}

	return TransportationDTO{
		ID:                 aggregate.ID().Bytes(),
		ItemID:             aggregate.ItemID().Bytes(),
		DriverID:           aggregate.DriverID().Bytes(),
		VehicleID:          aggregate.VehicleID().Bytes(),
		FromStorageID:      aggregate.FromStorageID().Bytes(),
		ToStorageID:        aggregate.ToStorageID().Bytes(),
		ScheduledDeparture: scheduledDeparture,
		ScheduledArrival:   scheduledArrival,
		ActualDeparture:    aggregate.ActualDeparture(),
		ActualArrival:      aggregate.ActualArrival(),
		Status:             int(aggregate.Status()),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain reconstructs the aggregate from its database representation using
// RestoreTransportation, which re-validates status and timestamp consistency.
func toDomain(dto TransportationDTO) (*transportation.Transportation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	fromStorageID, err := kernel.UUIDFromBytes(dto.FromStorageID[:])
	if err != nil {
		return nil, err
	}
	toStorageID, err := kernel.UUIDFromBytes(dto.ToStorageID[:])
	if err != nil {
		return nil, err
	}

	var window *kernel.TimeWindow
	if dto.ScheduledDeparture != nil && dto.ScheduledArrival != nil {
		w, windowErr := kernel.NewTimeWindow(*dto.ScheduledDeparture, *dto.ScheduledArrival)
		if windowErr != nil {
			return nil, windowErr
		}
		window = &w
	}

	return transportation.RestoreTransportation(
		id, itemID, driverID, vehicleID, fromStorageID, toStorageID,
		window,
		transportation.Status(dto.Status),
		dto.ActualDeparture,
		dto.ActualArrival,
		dto.CreatedAt,
	)
}
