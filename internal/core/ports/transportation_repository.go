// Package ports defines the contracts between the booking engine's core and
// its infrastructure: persistence, availability queries, and entity resolution.
// These interfaces establish dependency inversion and testability boundaries.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
)

// TransportationRepository defines the persistence contract for the
// Transportation aggregate.
type TransportationRepository interface {
	// Add persists a new booking.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *transportation.Transportation) error

	// Update persists changes to an existing booking.
	Update(ctx context.Context, aggregate *transportation.Transportation) error

	// Get retrieves a booking by its unique identifier.
	// Returns an ObjectNotFoundError with ParamName "transportation" when
	// no booking with the given id exists.
	Get(ctx context.Context, id kernel.UUID) (*transportation.Transportation, error)

	// Delete removes a booking by id. Terminal-state checks happen in the
	// application layer before this is called.
	Delete(ctx context.Context, id kernel.UUID) error

	AvailabilityStore
	ResourceLocker
}

// AvailabilityStore answers overlap queries for the booking-conflict check.
type AvailabilityStore interface {
	// FindOverlapping returns every non-terminal booking, other than
	// excludeID, that references the given resource and whose scheduled
	// window overlaps the half-open window. Unscheduled bookings never
	// appear in the result.
	FindOverlapping(
		ctx context.Context,
		kind transportation.ResourceKind,
		resourceID kernel.UUID,
		window kernel.TimeWindow,
		excludeID kernel.UUID,
	) ([]*transportation.Transportation, error)
}

// ResourceLocker serializes check-then-write sequences per resource so two
// concurrent bookings of the same driver or vehicle cannot both pass the
// overlap check. Locks are scoped to the current transaction and released
// on commit or rollback.
type ResourceLocker interface {
	LockResource(ctx context.Context, kind transportation.ResourceKind, resourceID kernel.UUID) error
}
