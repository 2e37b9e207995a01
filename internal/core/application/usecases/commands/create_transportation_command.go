package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateTransportationCommandIsNotConstructed = errors.New(
		"CreateTransportationCommand must be created via NewCreateTransportationCommand constructor",
	)
)

// CreateTransportationCommand represents a request to book the movement of an
// item between two storages using a vehicle and a driver.
//
// The scheduled window is optional: an unscheduled booking is exempt from
// resource-conflict checking and never blocks other bookings. The caller is
// responsible for supplying either both scheduling instants or neither; that
// rule is enforced where the window is constructed.
type CreateTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID
	itemID           kernel.UUID
	driverID         kernel.UUID
	vehicleID        kernel.UUID
	fromStorageID    kernel.UUID
	toStorageID      kernel.UUID
	window           *kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateTransportationCommand creates a booking command.
// All five references must be valid UUIDs. The distinct-storage rule is
// checked later by the aggregate so the failure carries OperationNotAllowed
// semantics rather than a validation error.
func NewCreateTransportationCommand(
	transportationID kernel.UUID,
	itemID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	fromStorageID kernel.UUID,
	toStorageID kernel.UUID,
	window *kernel.TimeWindow,
) (CreateTransportationCommand, error) {
	cmd := CreateTransportationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransportationID(transportationID),
		cmd.setReference(&cmd.itemID, itemID),
		cmd.setReference(&cmd.driverID, driverID),
		cmd.setReference(&cmd.vehicleID, vehicleID),
		cmd.setReference(&cmd.fromStorageID, fromStorageID),
		cmd.setReference(&cmd.toStorageID, toStorageID),
		cmd.setWindow(window),
	); err != nil {
		return CreateTransportationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportationCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportationCommandIsNotConstructed)
}

// TransportationID returns the identifier assigned to the new booking.
func (c CreateTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}

// ItemID returns the id of the item to move.
func (c CreateTransportationCommand) ItemID() kernel.UUID {
	return c.itemID
}

// DriverID returns the id of the driver to book.
func (c CreateTransportationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the id of the vehicle to book.
func (c CreateTransportationCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// FromStorageID returns the id of the origin storage.
func (c CreateTransportationCommand) FromStorageID() kernel.UUID {
	return c.fromStorageID
}

// ToStorageID returns the id of the destination storage.
func (c CreateTransportationCommand) ToStorageID() kernel.UUID {
	return c.toStorageID
}

// Window returns the scheduled window, or nil for unscheduled bookings.
func (c CreateTransportationCommand) Window() *kernel.TimeWindow {
	if c.window == nil {
		return nil
	}
	w := *c.window
	return &w
}

func (c *CreateTransportationCommand) setTransportationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.transportationID = id
	return nil
}

func (c *CreateTransportationCommand) setReference(target *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*target = id
	return nil
}

func (c *CreateTransportationCommand) setWindow(window *kernel.TimeWindow) error {
	if window == nil {
		return nil
	}
	if err := window.Validate(); err != nil {
		return err
	}
	w := *window
	c.window = &w
	return nil
}
