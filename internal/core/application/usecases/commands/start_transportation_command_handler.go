package commands

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/clock"
)

// StartTransportationCommandHandler moves a booking from Planned to InTransit
// and stamps the actual departure.
type StartTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
	now        clock.Now
}

// NewStartTransportationCommandHandler creates a handler for the start
// transition.
func NewStartTransportationCommandHandler(
	uowFactory TransportationUoWFactory,
	now clock.Now,
) StartTransportationCommandHandler {
	return StartTransportationCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle starts the booking and returns it with the departure stamped.
// Starting from any status but Planned fails with OperationNotAllowed.
func (h StartTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd StartTransportationCommand,
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

	if err = booking.Start(h.now()); err != nil {
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
