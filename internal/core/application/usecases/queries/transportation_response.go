// Package queries contains read operations in the CQRS architecture. Query
// handlers read the database directly and return plain response structs; they
// never go through the aggregate or mutate state.
package queries

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"

	"github.com/google/uuid"
)

// TransportationResponse is the read model of one booking.
type TransportationResponse struct {
	ID            kernel.UUID
	ItemID        kernel.UUID
	DriverID      kernel.UUID
	VehicleID     kernel.UUID
	FromStorageID kernel.UUID
	ToStorageID   kernel.UUID

	ScheduledDeparture *time.Time
	ScheduledArrival   *time.Time
	ActualDeparture    *time.Time
	ActualArrival      *time.Time

	Status    string
	CreatedAt time.Time
}

// transportationRow is the scan target for booking queries. Field names match
// the transportations table columns.
type transportationRow struct {
	ID                 uuid.UUID
	ItemID             uuid.UUID
	DriverID           uuid.UUID
	VehicleID          uuid.UUID
	FromStorageID      uuid.UUID
	ToStorageID        uuid.UUID
	ScheduledDeparture *time.Time
	ScheduledArrival   *time.Time
	ActualDeparture    *time.Time
	ActualArrival      *time.Time
	Status             int
	CreatedAt          time.Time
}

// transportationColumns is the select list shared by the booking queries.
const transportationColumns = `
	id,
	item_id,
	driver_id,
	vehicle_id,
	from_storage_id,
	to_storage_id,
	scheduled_departure,
	scheduled_arrival,
	actual_departure,
	actual_arrival,
	status,
	created_at
`

func rowToResponse(row transportationRow) (TransportationResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	itemID, err := kernel.UUIDFromBytes(row.ItemID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	driverID, err := kernel.UUIDFromBytes(row.DriverID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	vehicleID, err := kernel.UUIDFromBytes(row.VehicleID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	fromStorageID, err := kernel.UUIDFromBytes(row.FromStorageID[:])
	if err != nil {
		return TransportationResponse{}, err
	}
	toStorageID, err := kernel.UUIDFromBytes(row.ToStorageID[:])
	if err != nil {
		return TransportationResponse{}, err
	}

	return TransportationResponse{
		ID:                 id,
		ItemID:             itemID,
		DriverID:           driverID,
		VehicleID:          vehicleID,
		FromStorageID:      fromStorageID,
		ToStorageID:        toStorageID,
		ScheduledDeparture: row.ScheduledDeparture,
		ScheduledArrival:   row.ScheduledArrival,
		ActualDeparture:    row.ActualDeparture,
		ActualArrival:      row.ActualArrival,
		Status:             transportation.Status(row.Status).String(),
		CreatedAt:          row.CreatedAt,
	}, nil
}
