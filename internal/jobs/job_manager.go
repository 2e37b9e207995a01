package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueWatchJob *OverdueWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueHandler queries.GetOverduePlannedQueryHandler,
	now clock.Now,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueWatchJob: NewOverdueWatchJob(overdueHandler, now, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueWatchJob.Stop()
}
