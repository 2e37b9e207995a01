package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCancelTransportationCommandIsNotConstructed = errors.New(
		"CancelTransportationCommand must be created via NewCancelTransportationCommand constructor",
	)
)

// CancelTransportationCommand represents a request to abandon a booking
// before delivery.
type CancelTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelTransportationCommand creates a cancel command.
func NewCancelTransportationCommand(transportationID kernel.UUID) (CancelTransportationCommand, error) {
	if err := transportationID.Validate(); err != nil {
		return CancelTransportationCommand{}, err
	}

	return CancelTransportationCommand{
		transportationID: transportationID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTransportationCommand) Validate() error {
	return c.guard.Validate(ErrCancelTransportationCommandIsNotConstructed)
}

// TransportationID returns the id of the booking to cancel.
func (c CancelTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}
