package commands

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/clock"
)

// UpdateTransportationCommandHandler applies a full update to an existing
// booking: reference changes, rescheduling, and an optional status change,
// all within one transaction.
type UpdateTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
	resolver   ports.EntityResolver
	now        clock.Now
}

// NewUpdateTransportationCommandHandler creates a handler for booking updates.
func NewUpdateTransportationCommandHandler(
	uowFactory TransportationUoWFactory,
	resolver ports.EntityResolver,
	now clock.Now,
) UpdateTransportationCommandHandler {
	return UpdateTransportationCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		now:        now,
	}
}

// Handle loads the booking, rejects the update if it is terminal, re-resolves
// only the references that changed, applies the changes through the aggregate,
// and re-validates driver and vehicle availability for the resulting window
// with the booking itself excluded from the overlap scan.
//
// A requested status more than one legal transition away from the stored one
// fails with OperationNotAllowed; the state machine is the only way status
// moves.
func (h UpdateTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTransportationCommand,
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

	if err = booking.EnsureMutable("update"); err != nil {
		return nil, err
	}

	current := referenceIDs{
		ItemID:        booking.ItemID(),
		DriverID:      booking.DriverID(),
		VehicleID:     booking.VehicleID(),
		FromStorageID: booking.FromStorageID(),
		ToStorageID:   booking.ToStorageID(),
	}
	next := referenceIDs{
		ItemID:        cmd.ItemID(),
		DriverID:      cmd.DriverID(),
		VehicleID:     cmd.VehicleID(),
		FromStorageID: cmd.FromStorageID(),
		ToStorageID:   cmd.ToStorageID(),
	}
	if err = resolveChangedReferences(ctx, h.resolver, current, next); err != nil {
		return nil, err
	}

	if err = booking.ChangeReferences(
		cmd.ItemID(), cmd.DriverID(), cmd.VehicleID(), cmd.FromStorageID(), cmd.ToStorageID(),
	); err != nil {
		return nil, err
	}
	if err = booking.Reschedule(cmd.Window()); err != nil {
		return nil, err
	}
	if cmd.Status() != transportation.Unknown {
		if err = booking.ChangeStatus(cmd.Status(), h.now()); err != nil {
			return nil, err
		}
	}

	// A booking that just became terminal releases its resources, so the
	// availability checks only run while it remains active.
	if !booking.Status().IsTerminal() {
		if err = ensureResourcesFree(ctx, repo, "update", booking); err != nil {
			return nil, err
		}
		if err = lockAndEnsureNoConflict(ctx, repo, booking); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return booking, nil
}
