// Package jobs provides scheduled background tasks for the booking engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueWatchJob - Runs every minute and logs PLANNED bookings whose
// scheduled departure has passed without the movement being started.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueHandler, clock.System, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The overdue watch is observational: it never mutates bookings, and a failed
// run only logs and waits for the next tick.
package jobs
