package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/transportrepo"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type TransportationQueryHandlersTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	repo           *transportrepo.GormTransportationRepository
	byIDHandler    queries.GetTransportationByIDQueryHandler
	listHandler    queries.ListTransportationsQueryHandler
	overdueHandler queries.GetOverduePlannedQueryHandler
}

func (suite *TransportationQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&transportrepo.TransportationDTO{})
	suite.Require().NoError(err)

	suite.repo = transportrepo.NewGormTransportationRepository(db, &mockAggregateTracker{})
	suite.byIDHandler = queries.NewGetTransportationByIDQueryHandler(db)
	suite.listHandler = queries.NewListTransportationsQueryHandler(db)
	suite.overdueHandler = queries.NewGetOverduePlannedQueryHandler(db)
}

func (suite *TransportationQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TransportationQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE transportations CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *TransportationQueryHandlersTestSuite) newBooking(window *kernel.TimeWindow, createdAt time.Time) *transportation.Transportation {
	booking, err := transportation.NewTransportation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), window, createdAt,
	)
	suite.Require().NoError(err)
	return booking
}

func (suite *TransportationQueryHandlersTestSuite) window(start, end time.Time) *kernel.TimeWindow {
	w, err := kernel.NewTimeWindow(start, end)
	suite.Require().NoError(err)
	return &w
}

func (suite *TransportationQueryHandlersTestSuite) TestGetByID_ReturnsBooking() {
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	booking := suite.newBooking(suite.window(start, start.Add(4*time.Hour)), start.Add(-time.Hour))
	suite.Require().NoError(suite.repo.Add(ctx, booking))

	query, err := queries.NewGetTransportationByIDQuery(booking.ID())
	suite.Require().NoError(err)

	result, err := suite.byIDHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(booking.ID()))
	suite.True(result.DriverID.IsEqual(booking.DriverID()))
	suite.Equal("PLANNED", result.Status)
	suite.Require().NotNil(result.ScheduledDeparture)
	suite.True(result.ScheduledDeparture.Equal(start))
	suite.Nil(result.ActualDeparture)
}

func (suite *TransportationQueryHandlersTestSuite) TestGetByID_NotFound() {
	query, err := queries.NewGetTransportationByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.byIDHandler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TransportationQueryHandlersTestSuite) TestList_FiltersByStatus() {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)

	planned := suite.newBooking(nil, now)
	suite.Require().NoError(suite.repo.Add(ctx, planned))

	started := suite.newBooking(nil, now.Add(time.Minute))
	suite.Require().NoError(started.Start(now.Add(time.Hour)))
	suite.Require().NoError(suite.repo.Add(ctx, started))

	status := transportation.InTransit
	query, err := queries.NewListTransportationsQuery(
		queries.TransportationFilter{Status: &status}, 1, 0,
	)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(started.ID()))
	suite.Equal("IN_TRANSIT", result.Items[0].Status)
}

func (suite *TransportationQueryHandlersTestSuite) TestList_FiltersByStorages() {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)

	target := suite.newBooking(nil, now)
	other := suite.newBooking(nil, now)
	suite.Require().NoError(suite.repo.Add(ctx, target))
	suite.Require().NoError(suite.repo.Add(ctx, other))

	fromID := target.FromStorageID()
	toID := target.ToStorageID()
	query, err := queries.NewListTransportationsQuery(
		queries.TransportationFilter{FromStorageID: &fromID, ToStorageID: &toID}, 1, 0,
	)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(target.ID()))
}

func (suite *TransportationQueryHandlersTestSuite) TestList_PaginatesNewestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)

	for i := range 5 {
		booking := suite.newBooking(nil, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(suite.repo.Add(ctx, booking))
	}

	query, err := queries.NewListTransportationsQuery(queries.TransportationFilter{}, 1, 2)
	suite.Require().NoError(err)

	page1, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(5), page1.Total)
	suite.Require().Len(page1.Items, 2)
	suite.True(page1.Items[0].CreatedAt.After(page1.Items[1].CreatedAt))

	query3, err := queries.NewListTransportationsQuery(queries.TransportationFilter{}, 3, 2)
	suite.Require().NoError(err)

	page3, err := suite.listHandler.Handle(ctx, query3)
	suite.Require().NoError(err)
	suite.Equal(int64(5), page3.Total)
	suite.Len(page3.Items, 1)
}

func (suite *TransportationQueryHandlersTestSuite) TestList_InvalidPageRejected() {
	_, err := queries.NewListTransportationsQuery(queries.TransportationFilter{}, 0, 10)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *TransportationQueryHandlersTestSuite) TestOverdue_ReportsMissedDepartures() {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	// Departure already passed, still planned: overdue.
	missed := suite.newBooking(suite.window(now.Add(-2*time.Hour), now.Add(time.Hour)), now.Add(-3*time.Hour))
	suite.Require().NoError(suite.repo.Add(ctx, missed))

	// Departure passed but the booking started: not overdue.
	started := suite.newBooking(suite.window(now.Add(-2*time.Hour), now.Add(time.Hour)), now.Add(-3*time.Hour))
	suite.Require().NoError(started.Start(now.Add(-2 * time.Hour)))
	suite.Require().NoError(suite.repo.Add(ctx, started))

	// Departure in the future: not overdue.
	upcoming := suite.newBooking(suite.window(now.Add(time.Hour), now.Add(4*time.Hour)), now)
	suite.Require().NoError(suite.repo.Add(ctx, upcoming))

	// Unscheduled: never overdue.
	unscheduled := suite.newBooking(nil, now)
	suite.Require().NoError(suite.repo.Add(ctx, unscheduled))

	query, err := queries.NewGetOverduePlannedQuery(now)
	suite.Require().NoError(err)

	overdue, err := suite.overdueHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.True(overdue[0].ID.IsEqual(missed.ID()))
}

func (suite *TransportationQueryHandlersTestSuite) TestInvalidQuery_ReturnsError() {
	_, err := suite.byIDHandler.Handle(context.Background(), queries.GetTransportationByIDQuery{})
	suite.Require().Error(err)

	_, err = suite.listHandler.Handle(context.Background(), queries.ListTransportationsQuery{})
	suite.Require().Error(err)
}

func TestTransportationQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(TransportationQueryHandlersTestSuite))
}
