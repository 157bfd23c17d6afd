// Package jobs provides scheduled background tasks for the trust subsystem.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ScoreRefreshJob - Runs every minute to recompute reliability scores for
// couriers whose summary is flagged stale
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(courierRepo, recalculateScoreHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An empty stale list is a normal outcome, not an error
// - Each courier is recalculated independently so one failure does not block the sweep
// - Failures are logged with the courier ID and the job keeps going
package jobs
