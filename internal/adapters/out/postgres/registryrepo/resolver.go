package registryrepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// DefaultResolveTimeout bounds a single entity lookup when the caller does not
// configure one.
const DefaultResolveTimeout = 2 * time.Second

// GormEntityResolver implements ports.EntityResolver against the registry
// tables. Every lookup runs under a per-call deadline; a lookup that exceeds
// it reports the entity as not found (with the timeout as cause) rather than
// blocking the booking operation indefinitely.
type GormEntityResolver struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormEntityResolver creates a resolver over the given connection.
// A non-positive timeout falls back to DefaultResolveTimeout.
func NewGormEntityResolver(db *gorm.DB, timeout time.Duration) *GormEntityResolver {
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &GormEntityResolver{db: db, timeout: timeout}
}

// ResolveItem looks up an inventory item by id.
func (r *GormEntityResolver) ResolveItem(ctx context.Context, id kernel.UUID) (registry.Item, error) {
	var dto ItemDTO
	if err := r.lookup(ctx, ports.EntityItem, id, &dto); err != nil {
		return registry.Item{}, err
	}
	return itemToDomain(dto), nil
}

// ResolveDriver looks up a driver by id.
func (r *GormEntityResolver) ResolveDriver(ctx context.Context, id kernel.UUID) (registry.Driver, error) {
	var dto DriverDTO
	if err := r.lookup(ctx, ports.EntityDriver, id, &dto); err != nil {
		return registry.Driver{}, err
	}
	return driverToDomain(dto), nil
}

// ResolveVehicle looks up a vehicle by id.
func (r *GormEntityResolver) ResolveVehicle(ctx context.Context, id kernel.UUID) (registry.Vehicle, error) {
	var dto VehicleDTO
	if err := r.lookup(ctx, ports.EntityVehicle, id, &dto); err != nil {
		return registry.Vehicle{}, err
	}
	return vehicleToDomain(dto), nil
}

// ResolveStorage looks up a storage location by id.
func (r *GormEntityResolver) ResolveStorage(ctx context.Context, id kernel.UUID) (registry.Storage, error) {
	var dto StorageDTO
	if err := r.lookup(ctx, ports.EntityStorage, id, &dto); err != nil {
		return registry.Storage{}, err
	}
	return storageToDomain(dto), nil
}

// lookup runs a bounded primary-key query into dest and maps the two failure
// modes onto the resolver contract: missing row and exceeded deadline both
// become ObjectNotFound for the given kind, the latter carrying a
// TimeoutError cause so callers can still distinguish them.
func (r *GormEntityResolver) lookup(ctx context.Context, kind string, id kernel.UUID, dest any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(kind, id.String())
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.NewObjectNotFoundErrorWithCause(
			kind, id.String(),
			errs.NewTimeoutErrorWithCause("resolve "+kind, r.timeout, err),
		)
	}

	return err
}
