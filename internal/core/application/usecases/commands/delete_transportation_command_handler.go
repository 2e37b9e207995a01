package commands

import (
	"context"
)

// DeleteTransportationCommandHandler removes a booking and releases any
// window it held.
type DeleteTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
}

// NewDeleteTransportationCommandHandler creates a handler for booking deletion.
func NewDeleteTransportationCommandHandler(uowFactory TransportationUoWFactory) DeleteTransportationCommandHandler {
	return DeleteTransportationCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the booking. Terminal bookings are part of the historical
// record and cannot be deleted; the attempt fails with OperationNotAllowed.
// Deleting a missing booking fails with ObjectNotFound from the load.
func (h DeleteTransportationCommandHandler) Handle(ctx context.Context, cmd DeleteTransportationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportationRepository()
	booking, err := repo.Get(ctx, cmd.TransportationID())
	if err != nil {
		return err
	}

	if err = booking.EnsureMutable("delete"); err != nil {
		return err
	}

	if err = repo.Delete(ctx, booking.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
