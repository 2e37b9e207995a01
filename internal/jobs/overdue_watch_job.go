package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob periodically reports scheduled bookings that are still
// PLANNED after their scheduled departure. It only observes: starting,
// rescheduling, or cancelling an overdue booking stays a human decision.
type OverdueWatchJob struct {
	handler queries.GetOverduePlannedQueryHandler
	now     clock.Now
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueWatchJob creates a job that checks for overdue bookings once a
// minute.
func NewOverdueWatchJob(
	handler queries.GetOverduePlannedQueryHandler,
	now clock.Now,
	logger *slog.Logger,
) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler: handler,
		now:     now,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the overdue watch, running every minute.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every minute)")
	return nil
}

// Stop stops the overdue watch.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}

func (j *OverdueWatchJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverduePlannedQuery(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue watch query construction failed", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", err)
		return
	}

	for _, booking := range overdue {
		j.logger.WarnContext(ctx, "Booking missed its scheduled departure",
			"transportation_id", booking.ID.String(),
			"driver_id", booking.DriverID.String(),
			"vehicle_id", booking.VehicleID.String(),
			"scheduled_departure", booking.ScheduledDeparture,
		)
	}
}
