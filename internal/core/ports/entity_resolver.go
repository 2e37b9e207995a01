package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
)

// Entity kind names carried in ObjectNotFoundError.ParamName so callers can
// tell which reference failed to resolve.
const (
	EntityItem           = "item"
	EntityDriver         = "driver"
	EntityVehicle        = "vehicle"
	EntityStorage        = "storage"
	EntityTransportation = "transportation"
)

// EntityResolver resolves the references a booking carries. It may be backed
// by local tables or a remote service; the application layer assumes neither.
// Each lookup either returns the read model or fails with an
// ObjectNotFoundError whose ParamName names the entity kind. A lookup that
// exceeds its time bound fails the same way, with a TimeoutError as cause.
// Resolvers have no side effects.
type EntityResolver interface {
	ResolveItem(ctx context.Context, id kernel.UUID) (registry.Item, error)
	ResolveDriver(ctx context.Context, id kernel.UUID) (registry.Driver, error)
	ResolveVehicle(ctx context.Context, id kernel.UUID) (registry.Vehicle, error)
	ResolveStorage(ctx context.Context, id kernel.UUID) (registry.Storage, error)
}
