package commands

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/errs"
)

// CreateTransportationCommandHandler handles the business logic for booking
// creation: structural validation, concurrent reference resolution, the
// vehicle capacity guard, and the two-phase availability check.
//
// Failure semantics are all-or-nothing: any resolution failure, guard
// rejection, or conflict leaves no persisted side effect.
type CreateTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
	resolver   ports.EntityResolver
	now        clock.Now
}

// NewCreateTransportationCommandHandler creates a handler for booking creation.
func NewCreateTransportationCommandHandler(
	uowFactory TransportationUoWFactory,
	resolver ports.EntityResolver,
	now clock.Now,
) CreateTransportationCommandHandler {
	return CreateTransportationCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		now:        now,
	}
}

// Handle processes the creation command and returns the persisted booking in
// Planned status.
//
// The five reference lookups run concurrently; the first failure in the fixed
// order item, driver, vehicle, fromStorage, toStorage is the one reported.
// When a scheduled window is present, driver and vehicle availability is
// pre-checked against committed state (OperationNotAllowed when busy) and
// re-checked inside the transaction under per-resource locks
// (ResourceConflict when a concurrent writer won the window).
func (h CreateTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTransportationCommand,
) (*transportation.Transportation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	booking, err := transportation.NewTransportation(
		cmd.TransportationID(),
		cmd.ItemID(),
		cmd.DriverID(),
		cmd.VehicleID(),
		cmd.FromStorageID(),
		cmd.ToStorageID(),
		cmd.Window(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	refs, err := resolveReferences(ctx, h.resolver, referenceIDs{
		ItemID:        cmd.ItemID(),
		DriverID:      cmd.DriverID(),
		VehicleID:     cmd.VehicleID(),
		FromStorageID: cmd.FromStorageID(),
		ToStorageID:   cmd.ToStorageID(),
	})
	if err != nil {
		return nil, err
	}

	if !refs.Vehicle.CanCarry(refs.Item.Weight) {
		return nil, errs.NewOperationNotAllowedError(
			"create",
			fmt.Sprintf("item weight %s exceeds vehicle capacity %s", refs.Item.Weight, refs.Vehicle.Capacity),
		)
	}

	uow := h.uowFactory.Create()

	if err = ensureResourcesFree(ctx, uow.TransportationRepository(), "create", booking); err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportationRepository()
	if err = lockAndEnsureNoConflict(ctx, repo, booking); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, booking); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return booking, nil
}
