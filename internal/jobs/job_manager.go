package jobs

import (
	"fmt"
	"log/slog"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scoreRefreshJob *ScoreRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	courierRepo ports.CourierRepository,
	recalculateScoreHandler commands.RecalculateScoreCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scoreRefreshJob: NewScoreRefreshJob(courierRepo, recalculateScoreHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scoreRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start score refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scoreRefreshJob.Stop()
}
