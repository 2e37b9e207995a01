package commands

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"
)

// CancelTransportationCommandHandler moves a booking to Cancelled from either
// active status, releasing its window for other bookings.
type CancelTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
}

// NewCancelTransportationCommandHandler creates a handler for the cancel
// transition.
func NewCancelTransportationCommandHandler(uowFactory TransportationUoWFactory) CancelTransportationCommandHandler {
	return CancelTransportationCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the booking. Cancelling an in-transit booking keeps its
// departure stamp; cancelling a terminal booking fails with
// OperationNotAllowed.
func (h CancelTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd CancelTransportationCommand,
) (*transportation.Transportation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportationRepository()
	booking, err := repo.Get(ctx, cmd.TransportationID())
	if err != nil {
		return nil, err
	}

	if err = booking.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return booking, nil
}
