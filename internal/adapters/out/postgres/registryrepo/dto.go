// Package registryrepo resolves the entities a booking references (items,
// drivers, vehicles, storages) from their database tables. The tables are
// owned by other parts of the warehouse system; this package only reads them.
package registryrepo

import (
	"warehouse/internal/core/domain/model/registry"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents a row of the inventory item table.
type ItemDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Weight decimal.Decimal `gorm:"type:numeric"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// DriverDTO represents a row of the driver table.
type DriverDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO represents a row of the vehicle table.
type VehicleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate    string
	Capacity decimal.Decimal `gorm:"type:numeric"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

// StorageDTO represents a row of the storage location table.
type StorageDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (StorageDTO) TableName() string {
	return "storages"
}

func itemToDomain(dto ItemDTO) registry.Item {
	return registry.Item{ID: dto.ID.String(), Name: dto.Name, Weight: dto.Weight}
}

func driverToDomain(dto DriverDTO) registry.Driver {
	return registry.Driver{ID: dto.ID.String(), Name: dto.Name}
}

func vehicleToDomain(dto VehicleDTO) registry.Vehicle {
	return registry.Vehicle{ID: dto.ID.String(), Plate: dto.Plate, Capacity: dto.Capacity}
}

func storageToDomain(dto StorageDTO) registry.Storage {
	return registry.Storage{ID: dto.ID.String(), Name: dto.Name}
}
