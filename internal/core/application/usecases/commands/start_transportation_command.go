package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrStartTransportationCommandIsNotConstructed = errors.New(
		"StartTransportationCommand must be created via NewStartTransportationCommand constructor",
	)
)

// StartTransportationCommand represents a request to begin the physical
// movement of a planned booking.
type StartTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransportationCommand creates a start command.
func NewStartTransportationCommand(transportationID kernel.UUID) (StartTransportationCommand, error) {
	if err := transportationID.Validate(); err != nil {
		return StartTransportationCommand{}, err
	}

	return StartTransportationCommand{
		transportationID: transportationID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransportationCommand) Validate() error {
	return c.guard.Validate(ErrStartTransportationCommandIsNotConstructed)
}

// TransportationID returns the id of the booking to start.
func (c StartTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}
