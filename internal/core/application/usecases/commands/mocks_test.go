package commands_test

import (
	"context"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockTransportationRepository struct{ mock.Mock }

func (m *MockTransportationRepository) Add(ctx context.Context, t *transportation.Transportation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransportationRepository) Update(ctx context.Context, t *transportation.Transportation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransportationRepository) Get(ctx context.Context, id kernel.UUID) (*transportation.Transportation, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*transportation.Transportation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransportationRepository) FindOverlapping(
	ctx context.Context,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
	window kernel.TimeWindow,
	excludeID kernel.UUID,
) ([]*transportation.Transportation, error) {
	args := m.Called(ctx, kind, resourceID, window, excludeID)
	if v := args.Get(0); v != nil {
		return v.([]*transportation.Transportation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportationRepository) LockResource(
	ctx context.Context,
	kind transportation.ResourceKind,
	resourceID kernel.UUID,
) error {
	args := m.Called(ctx, kind, resourceID)
	return args.Error(0)
}

type MockTransportationUoW struct{ mock.Mock }

func (m *MockTransportationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportationUoW) TransportationRepository() ports.TransportationRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportationRepository)
}

type MockTransportationUoWFactory struct{ mock.Mock }

func (m *MockTransportationUoWFactory) Create() commands.TransportationUoW {
	args := m.Called()
	return args.Get(0).(commands.TransportationUoW)
}

type MockEntityResolver struct{ mock.Mock }

func (m *MockEntityResolver) ResolveItem(ctx context.Context, id kernel.UUID) (registry.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Item), args.Error(1)
}

func (m *MockEntityResolver) ResolveDriver(ctx context.Context, id kernel.UUID) (registry.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Driver), args.Error(1)
}

func (m *MockEntityResolver) ResolveVehicle(ctx context.Context, id kernel.UUID) (registry.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Vehicle), args.Error(1)
}

func (m *MockEntityResolver) ResolveStorage(ctx context.Context, id kernel.UUID) (registry.Storage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Storage), args.Error(1)
}

// newResolverFor wires a resolver that successfully resolves every reference
// of cmd: a 5kg item and a 1000kg-capacity vehicle.
func newResolverFor(cmd commands.CreateTransportationCommand) *MockEntityResolver {
	resolver := new(MockEntityResolver)
	resolver.On("ResolveItem", mock.Anything, cmd.ItemID()).
		Return(registry.Item{ID: cmd.ItemID().String(), Name: "pallet", Weight: decimal.NewFromInt(5)}, nil)
	resolver.On("ResolveDriver", mock.Anything, cmd.DriverID()).
		Return(registry.Driver{ID: cmd.DriverID().String(), Name: "driver"}, nil)
	resolver.On("ResolveVehicle", mock.Anything, cmd.VehicleID()).
		Return(registry.Vehicle{ID: cmd.VehicleID().String(), Plate: "AB-123", Capacity: decimal.NewFromInt(1000)}, nil)
	resolver.On("ResolveStorage", mock.Anything, cmd.FromStorageID()).
		Return(registry.Storage{ID: cmd.FromStorageID().String(), Name: "origin"}, nil)
	resolver.On("ResolveStorage", mock.Anything, cmd.ToStorageID()).
		Return(registry.Storage{ID: cmd.ToStorageID().String(), Name: "destination"}, nil)
	return resolver
}

func mustWindow(start, end time.Time) *kernel.TimeWindow {
	w, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		panic(err)
	}
	return &w
}
