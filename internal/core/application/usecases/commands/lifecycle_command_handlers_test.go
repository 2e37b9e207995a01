package commands_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLifecycleUoW(ctx context.Context, repo *MockTransportationRepository) (*MockTransportationUoW, *MockTransportationUoWFactory) {
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestStartTransportationCommandHandler_Handle_StampsDeparture(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	cmd, err := commands.NewStartTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once()
	_, factory := newLifecycleUoW(ctx, repo)

	h := commands.NewStartTransportationCommandHandler(factory, testNow)
	started, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, transportation.InTransit, started.Status())
	require.NotNil(t, started.ActualDeparture())
	assert.True(t, started.ActualDeparture().Equal(testNow()))
	assert.Nil(t, started.ActualArrival())
	repo.AssertExpectations(t)
}

func TestStartTransportationCommandHandler_Handle_AlreadyInTransit(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	require.NoError(t, booking.Start(testNow()))
	cmd, err := commands.NewStartTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransportationCommandHandler(factory, testNow)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartTransportationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewStartTransportationCommand(id)
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("transportation", id)).Once()
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransportationCommandHandler(factory, testNow)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteTransportationCommandHandler_Handle_StampsArrival(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	departedAt := testNow().Add(-2 * time.Hour)
	require.NoError(t, booking.Start(departedAt))
	cmd, err := commands.NewCompleteTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once()
	_, factory := newLifecycleUoW(ctx, repo)

	h := commands.NewCompleteTransportationCommandHandler(factory, testNow)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, transportation.Delivered, completed.Status())
	require.NotNil(t, completed.ActualArrival())
	assert.True(t, completed.ActualArrival().Equal(testNow()))
	// The departure stamp from the start transition is untouched.
	require.NotNil(t, completed.ActualDeparture())
	assert.True(t, completed.ActualDeparture().Equal(departedAt))
}

func TestCompleteTransportationCommandHandler_Handle_NeverStarted(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	cmd, err := commands.NewCompleteTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTransportationCommandHandler(factory, testNow)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelTransportationCommandHandler_Handle_FromPlanned(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	cmd, err := commands.NewCancelTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once()
	_, factory := newLifecycleUoW(ctx, repo)

	h := commands.NewCancelTransportationCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, transportation.Cancelled, cancelled.Status())
	assert.Nil(t, cancelled.ActualDeparture())
	assert.Nil(t, cancelled.ActualArrival())
}

func TestCancelTransportationCommandHandler_Handle_FromInTransitKeepsDeparture(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	require.NoError(t, booking.Start(testNow()))
	cmd, err := commands.NewCancelTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*transportation.Transportation")).Return(nil).Once()
	_, factory := newLifecycleUoW(ctx, repo)

	h := commands.NewCancelTransportationCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, transportation.Cancelled, cancelled.Status())
	require.NotNil(t, cancelled.ActualDeparture())
	assert.Nil(t, cancelled.ActualArrival())
}

func TestCancelTransportationCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	booking := newStoredBooking(t, nil)
	require.NoError(t, booking.Start(testNow()))
	require.NoError(t, booking.Complete(testNow().Add(time.Hour)))
	cmd, err := commands.NewCancelTransportationCommand(booking.ID())
	require.NoError(t, err)

	repo := new(MockTransportationRepository)
	repo.On("Get", mock.Anything, booking.ID()).Return(booking, nil).Once()
	uow := new(MockTransportationUoW)
	uow.On("TransportationRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTransportationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTransportationCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
