package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = clock.Fixed(time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC))

func newCreateCommand(t *testing.T, window *kernel.TimeWindow) commands.CreateTransportationCommand {
	t.Helper()
	cmd, err := commands.NewCreateTransportationCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), window,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateTransportationCommandHandler_Handle_Unscheduled(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, nil)
	resolver := newResolverFor(cmd)

	repo := new(MockTransportationRepository)
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, transportation.Planned, booking.Status())
	assert.False(t, booking.IsScheduled())
	assert.Nil(t, booking.ActualDeparture())
	// No window means no availability traffic at all.
	repo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "LockResource", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTransportationCommandHandler_Handle_Scheduled(t *testing.T) {
	ctx := t.Context()
	window := mustWindow(
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	cmd := newCreateCommand(t, window)
	resolver := newResolverFor(cmd)

	repo := new(MockTransportationRepository)
	// Pre-check and the in-transaction re-check both scan driver then vehicle.
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceDriver, cmd.DriverID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{}, nil).Twice()
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceVehicle, cmd.VehicleID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{}, nil).Twice()
	repo.On("LockResource", mock.Anything, transportation.ResourceDriver, cmd.DriverID()).Return(nil).Once()
	repo.On("LockResource", mock.Anything, transportation.ResourceVehicle, cmd.VehicleID()).Return(nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once()

	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.True(t, booking.IsScheduled())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTransportationCommandHandler_Handle_BusyDriver(t *testing.T) {
	ctx := t.Context()
	window := mustWindow(
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	cmd := newCreateCommand(t, window)
	resolver := newResolverFor(cmd)

	other, err := transportation.NewTransportation(
		kernel.NewUUID(), kernel.NewUUID(), cmd.DriverID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), window, testNow(),
	)
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceDriver, cmd.DriverID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{other}, nil).Once()

	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)

	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	// The pre-check failed before any transaction was opened.
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateTransportationCommandHandler_Handle_ConcurrentConflict(t *testing.T) {
	ctx := t.Context()
	window := mustWindow(
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	cmd := newCreateCommand(t, window)
	resolver := newResolverFor(cmd)

	winner, err := transportation.NewTransportation(
		kernel.NewUUID(), kernel.NewUUID(), cmd.DriverID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), window, testNow(),
	)
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	// Pre-check passes; the locked re-check finds a concurrent booking that
	// claimed the driver in between.
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceDriver, cmd.DriverID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{}, nil).Once()
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceVehicle, cmd.VehicleID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{}, nil).Once()
	repo.On("LockResource", mock.Anything, transportation.ResourceDriver, cmd.DriverID()).Return(nil).Once()
	repo.On("LockResource", mock.Anything, transportation.ResourceVehicle, cmd.VehicleID()).Return(nil).Once()
	repo.On("FindOverlapping", mock.Anything, transportation.ResourceDriver, cmd.DriverID(), *window, cmd.TransportationID()).
		Return([]*transportation.Transportation{winner}, nil).Once()

	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, errs.ErrResourceConflict)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateTransportationCommandHandler_Handle_ItemTooHeavy(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, nil)

	resolver := new(MockEntityResolver)
	resolver.On("ResolveItem", mock.Anything, cmd.ItemID()).
		Return(registry.Item{ID: cmd.ItemID().String(), Name: "engine block", Weight: decimal.NewFromInt(900)}, nil)
	resolver.On("ResolveDriver", mock.Anything, cmd.DriverID()).
		Return(registry.Driver{ID: cmd.DriverID().String(), Name: "driver"}, nil)
	resolver.On("ResolveVehicle", mock.Anything, cmd.VehicleID()).
		Return(registry.Vehicle{ID: cmd.VehicleID().String(), Plate: "AB-123", Capacity: decimal.NewFromInt(500)}, nil)
	resolver.On("ResolveStorage", mock.Anything, mock.Anything).
		Return(registry.Storage{ID: "s", Name: "storage"}, nil)

	factory := new(MockTransportationUoWFactory)

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTransportationCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, nil)

	resolver := new(MockEntityResolver)
	resolver.On("ResolveItem", mock.Anything, cmd.ItemID()).
		Return(registry.Item{ID: cmd.ItemID().String(), Name: "pallet", Weight: decimal.NewFromInt(5)}, nil)
	resolver.On("ResolveDriver", mock.Anything, cmd.DriverID()).
		Return(registry.Driver{}, errs.NewObjectNotFoundError(ports.EntityDriver, cmd.DriverID()))
	resolver.On("ResolveVehicle", mock.Anything, cmd.VehicleID()).
		Return(registry.Vehicle{ID: cmd.VehicleID().String(), Plate: "AB-123", Capacity: decimal.NewFromInt(1000)}, nil)
	resolver.On("ResolveStorage", mock.Anything, mock.Anything).
		Return(registry.Storage{ID: "s", Name: "storage"}, nil)

	factory := new(MockTransportationUoWFactory)

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ports.EntityDriver, notFound.ParamName)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTransportationCommandHandler_Handle_FailureOrderIsDeterministic(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, nil)

	// Every lookup fails; the item failure must win regardless of goroutine
	// scheduling.
	resolver := new(MockEntityResolver)
	resolver.On("ResolveItem", mock.Anything, cmd.ItemID()).
		Return(registry.Item{}, errs.NewObjectNotFoundError(ports.EntityItem, cmd.ItemID()))
	resolver.On("ResolveDriver", mock.Anything, cmd.DriverID()).
		Return(registry.Driver{}, errs.NewObjectNotFoundError(ports.EntityDriver, cmd.DriverID()))
	resolver.On("ResolveVehicle", mock.Anything, cmd.VehicleID()).
		Return(registry.Vehicle{}, errs.NewObjectNotFoundError(ports.EntityVehicle, cmd.VehicleID()))
	resolver.On("ResolveStorage", mock.Anything, mock.Anything).
		Return(registry.Storage{}, errs.NewObjectNotFoundError(ports.EntityStorage, "any"))

	factory := new(MockTransportationUoWFactory)

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	for range 20 {
		_, err := h.Handle(ctx, cmd)
		require.Error(t, err)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, ports.EntityItem, notFound.ParamName)
	}
}

func TestCreateTransportationCommandHandler_Handle_SameStorage(t *testing.T) {
	ctx := t.Context()
	storageID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportationCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		storageID, storageID, nil,
	)
	require.NoError(t, err)

	resolver := new(MockEntityResolver)
	factory := new(MockTransportationUoWFactory)

	h := commands.NewCreateTransportationCommandHandler(factory, resolver, testNow)
	booking, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	resolver.AssertNotCalled(t, "ResolveItem", mock.Anything, mock.Anything)
}

func TestCreateTransportationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTransportationCommand{} // not constructed properly
	factory := new(MockTransportationUoWFactory)
	h := commands.NewCreateTransportationCommandHandler(factory, new(MockEntityResolver), testNow)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
