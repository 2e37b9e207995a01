package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrDeleteTransportationCommandIsNotConstructed = errors.New(
		"DeleteTransportationCommand must be created via NewDeleteTransportationCommand constructor",
	)
)

// DeleteTransportationCommand represents a request to remove a booking.
type DeleteTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTransportationCommand creates a delete command.
func NewDeleteTransportationCommand(transportationID kernel.UUID) (DeleteTransportationCommand, error) {
	if err := transportationID.Validate(); err != nil {
		return DeleteTransportationCommand{}, err
	}

	return DeleteTransportationCommand{
		transportationID: transportationID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTransportationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTransportationCommandIsNotConstructed)
}

// TransportationID returns the id of the booking to delete.
func (c DeleteTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}
