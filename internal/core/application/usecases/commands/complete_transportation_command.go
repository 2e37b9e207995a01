package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCompleteTransportationCommandIsNotConstructed = errors.New(
		"CompleteTransportationCommand must be created via NewCompleteTransportationCommand constructor",
	)
)

// CompleteTransportationCommand represents a request to mark an in-transit
// booking as delivered.
type CompleteTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteTransportationCommand creates a complete command.
func NewCompleteTransportationCommand(transportationID kernel.UUID) (CompleteTransportationCommand, error) {
	if err := transportationID.Validate(); err != nil {
		return CompleteTransportationCommand{}, err
	}

	return CompleteTransportationCommand{
		transportationID: transportationID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTransportationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTransportationCommandIsNotConstructed)
}

// TransportationID returns the id of the booking to complete.
func (c CompleteTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}
