package services

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// AvailabilityChecker is a domain service answering whether a driver or a
// vehicle is free for a candidate scheduled window.
//
// Business rules:
//   - A resource is unavailable iff another non-terminal booking references
//     it with an overlapping half-open window.
//   - Back-to-back windows (one ending exactly when the other starts) are
//     not conflicts.
//   - Unscheduled bookings never conflict and never block others; callers
//     skip the check entirely when no window is present.
//
// The check reads currently committed state. Guarding the gap between the
// check and the subsequent write is the caller's job (see ResourceLocker).
type AvailabilityChecker struct {
	store ports.AvailabilityStore
}

// NewAvailabilityChecker creates a checker over the given store.
func NewAvailabilityChecker(store ports.AvailabilityStore) AvailabilityChecker {
	return AvailabilityChecker{store: store}
}

// IsAvailable reports whether the resource has no overlapping non-terminal
// booking in the given window. excludeID removes the caller's own booking
// from consideration so updates do not conflict with themselves.
func (c AvailabilityChecker) IsAvailable(
	ctx context.Context,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
	window kernel.TimeWindow,
	excludeID kernel.UUID,
) (bool, error) {
	if err := resourceID.Validate(); err != nil {
		return false, err
	}
	if err := window.Validate(); err != nil {
		return false, err
	}

	overlapping, err := c.store.FindOverlapping(ctx, kind, resourceID, window, excludeID)
	if err != nil {
		return false, err
	}

	return len(overlapping) == 0, nil
}

// EnsureAvailable is IsAvailable with the unavailability case mapped to
// OperationNotAllowed naming the busy resource and the requested window.
func (c AvailabilityChecker) EnsureAvailable(
	ctx context.Context,
	operation string,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
	window kernel.TimeWindow,
	excludeID kernel.UUID,
) error {
	available, err := c.IsAvailable(ctx, kind, resourceID, window, excludeID)
	if err != nil {
		return err
	}
	if !available {
		return errs.NewOperationNotAllowedError(
			operation,
			fmt.Sprintf("%s %s is not available for window %s", kind, resourceID, window),
		)
	}
	return nil
}
