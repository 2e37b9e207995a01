package transportrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportationRepository implements TransportationRepository using GORM.
type GormTransportationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportationRepository creates a new GORM transportation repository.
func NewGormTransportationRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportationRepository {
	return &GormTransportationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormTransportationRepository) Add(ctx context.Context, aggregate *transportation.Transportation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking to the database. All columns are written,
// so clearing the scheduled window persists as NULLs rather than being
// skipped as zero values.
func (r *GormTransportationRepository) Update(ctx context.Context, aggregate *transportation.Transportation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransportationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transportation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormTransportationRepository) Get(ctx context.Context, id kernel.UUID) (*transportation.Transportation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transportation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a booking by ID.
func (r *GormTransportationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TransportationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transportation", id.String())
	}

	return nil
}

// FindOverlapping returns the non-terminal bookings, other than excludeID,
// holding the given resource for a window intersecting the half-open
// [window.Start, window.End). The strict inequalities make back-to-back
// windows non-conflicting. Unscheduled bookings have NULL bounds and never
// match.
func (r *GormTransportationRepository) FindOverlapping(
	ctx context.Context,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
	window kernel.TimeWindow,
	excludeID kernel.UUID,
) ([]*transportation.Transportation, error) {
	if err := resourceID.Validate(); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	column, err := resourceColumn(kind)
	if err != nil {
		return nil, err
	}

	var dtos []TransportationDTO
	err = r.db.WithContext(ctx).
		Where(column+" = ?", resourceID.Bytes()).
		Where("status NOT IN ?", []int{int(transportation.Delivered), int(transportation.Cancelled)}).
		Where("scheduled_departure < ? AND scheduled_arrival > ?", window.End(), window.Start()).
		Where("id <> ?", excludeID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*transportation.Transportation, 0, len(dtos))
	for _, dto := range dtos {
		booking, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// LockResource takes a transaction-scoped advisory lock keyed by resource kind
// and id. Two writers booking the same driver or vehicle serialize here, which
// closes the gap between the overlap check and the insert. The lock is
// released automatically at commit or rollback.
func (r *GormTransportationRepository) LockResource(
	ctx context.Context,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}
	if _, err := resourceColumn(kind); err != nil {
		return err
	}

	key := fmt.Sprintf("%s:%s", kind, resourceID)
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func resourceColumn(kind transportation.ResourceKind) (string, error) {
	switch kind {
	case transportation.ResourceDriver:
		return "driver_id", nil
	case transportation.ResourceVehicle:
		return "vehicle_id", nil
	default:
		return "", errs.NewValueIsInvalidError("resource kind")
	}
}
