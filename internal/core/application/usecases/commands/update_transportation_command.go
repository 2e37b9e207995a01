package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/guard"
)

var (
	ErrUpdateTransportationCommandIsNotConstructed = errors.New(
		"UpdateTransportationCommand must be created via NewUpdateTransportationCommand constructor",
	)
)

// UpdateTransportationCommand represents a full replacement of a booking's
// mutable fields: the five references, the scheduled window, and optionally
// the status.
//
// Status transportation.Unknown means "leave the status alone". Any other
// value is applied through the state machine, so an illegal jump fails the
// whole update.
type UpdateTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID
	itemID           kernel.UUID
	driverID         kernel.UUID
	vehicleID        kernel.UUID
	fromStorageID    kernel.UUID
	toStorageID      kernel.UUID
	window           *kernel.TimeWindow
	status           transportation.Status

	guard guard.ConstructorGuard
}

// NewUpdateTransportationCommand creates an update command. status may be
// transportation.Unknown to keep the stored status.
func NewUpdateTransportationCommand(
	transportationID kernel.UUID,
	itemID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	fromStorageID kernel.UUID,
	toStorageID kernel.UUID,
	window *kernel.TimeWindow,
	status transportation.Status,
) (UpdateTransportationCommand, error) {
	cmd := UpdateTransportationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReference(&cmd.transportationID, transportationID),
		cmd.setReference(&cmd.itemID, itemID),
		cmd.setReference(&cmd.driverID, driverID),
		cmd.setReference(&cmd.vehicleID, vehicleID),
		cmd.setReference(&cmd.fromStorageID, fromStorageID),
		cmd.setReference(&cmd.toStorageID, toStorageID),
		cmd.setWindow(window),
		cmd.setStatus(status),
	); err != nil {
		return UpdateTransportationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransportationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransportationCommandIsNotConstructed)
}

// TransportationID returns the id of the booking to update.
func (c UpdateTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}

// ItemID returns the new item reference.
func (c UpdateTransportationCommand) ItemID() kernel.UUID {
	return c.itemID
}

// DriverID returns the new driver reference.
func (c UpdateTransportationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the new vehicle reference.
func (c UpdateTransportationCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// FromStorageID returns the new origin storage reference.
func (c UpdateTransportationCommand) FromStorageID() kernel.UUID {
	return c.fromStorageID
}

// ToStorageID returns the new destination storage reference.
func (c UpdateTransportationCommand) ToStorageID() kernel.UUID {
	return c.toStorageID
}

// Window returns the new scheduled window, or nil to make the booking
// unscheduled.
func (c UpdateTransportationCommand) Window() *kernel.TimeWindow {
	if c.window == nil {
		return nil
	}
	w := *c.window
	return &w
}

// Status returns the requested status, or transportation.Unknown when the
// update does not change it.
func (c UpdateTransportationCommand) Status() transportation.Status {
	return c.status
}

func (c *UpdateTransportationCommand) setReference(target *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*target = id
	return nil
}

func (c *UpdateTransportationCommand) setWindow(window *kernel.TimeWindow) error {
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

func (c *UpdateTransportationCommand) setStatus(status transportation.Status) error {
	if status == transportation.Unknown {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
