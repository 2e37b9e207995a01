package commands

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/clock"
)

// CompleteTransportationCommandHandler moves a booking from InTransit to
// Delivered and stamps the actual arrival.
type CompleteTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
	now        clock.Now
}

// NewCompleteTransportationCommandHandler creates a handler for the complete
// transition.
func NewCompleteTransportationCommandHandler(
	uowFactory TransportationUoWFactory,
	now clock.Now,
) CompleteTransportationCommandHandler {
	return CompleteTransportationCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle completes the booking and returns it with the arrival stamped.
// Completing a booking that never started fails with OperationNotAllowed;
// the departure stamp is never fabricated.
func (h CompleteTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteTransportationCommand,
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

	if err = booking.Complete(h.now()); err != nil {
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
