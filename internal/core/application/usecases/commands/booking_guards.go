package commands

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// ensureResourcesFree runs the availability pre-check against committed state
// for both bookable resources of a scheduled booking. Unscheduled bookings
// pass unconditionally. A busy resource surfaces as OperationNotAllowed
// naming it, per the pre-check contract.
func ensureResourcesFree(
	ctx context.Context,
	store ports.AvailabilityStore,
	operation string,
	booking *transportation.Transportation,
) error {
	if !booking.IsScheduled() {
		return nil
	}

	checker := services.NewAvailabilityChecker(store)
	window := *booking.Window()

	if err := checker.EnsureAvailable(ctx, operation, transportation.ResourceDriver, booking.DriverID(), window, booking.ID()); err != nil {
		return err
	}
	return checker.EnsureAvailable(ctx, operation, transportation.ResourceVehicle, booking.VehicleID(), window, booking.ID())
}

// lockAndEnsureNoConflict serializes the check-then-write sequence inside the
// current transaction. It takes per-resource advisory locks (always driver
// first, then vehicle, so concurrent writers cannot deadlock) and re-runs the
// overlap check under them. A failure here means a concurrent writer claimed
// the window after the pre-check passed, so it surfaces as ResourceConflict,
// which callers may retry.
func lockAndEnsureNoConflict(
	ctx context.Context,
	repo ports.TransportationRepository,
	booking *transportation.Transportation,
) error {
	if !booking.IsScheduled() {
		return nil
	}

	if err := repo.LockResource(ctx, transportation.ResourceDriver, booking.DriverID()); err != nil {
		return err
	}
	if err := repo.LockResource(ctx, transportation.ResourceVehicle, booking.VehicleID()); err != nil {
		return err
	}

	checker := services.NewAvailabilityChecker(repo)
	window := *booking.Window()

	resources := []struct {
		kind transportation.ResourceKind
		id   string
		ok   func() (bool, error)
	}{
		{
			kind: transportation.ResourceDriver,
			id:   booking.DriverID().String(),
			ok: func() (bool, error) {
				return checker.IsAvailable(ctx, transportation.ResourceDriver, booking.DriverID(), window, booking.ID())
			},
		},
		{
			kind: transportation.ResourceVehicle,
			id:   booking.VehicleID().String(),
			ok: func() (bool, error) {
				return checker.IsAvailable(ctx, transportation.ResourceVehicle, booking.VehicleID(), window, booking.ID())
			},
		},
	}

	for _, res := range resources {
		available, err := res.ok()
		if err != nil {
			return err
		}
		if !available {
			return errs.NewResourceConflictError(res.kind.String(), res.id)
		}
	}

	return nil
}
