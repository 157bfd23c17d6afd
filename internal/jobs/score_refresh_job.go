package jobs

import (
	"context"
	"log/slog"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ScoreRefreshJob recomputes reliability scores for couriers whose summary
// is flagged stale. Runs every minute.
type ScoreRefreshJob struct {
	courierRepo ports.CourierRepository
	handler     commands.RecalculateScoreCommandHandler
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewScoreRefreshJob creates a new job for refreshing stale scores.
// Uses RecalculateScoreCommandHandler to recompute each flagged courier.
func NewScoreRefreshJob(
	courierRepo ports.CourierRepository,
	handler commands.RecalculateScoreCommandHandler,
	logger *slog.Logger,
) *ScoreRefreshJob {
	return &ScoreRefreshJob{
		courierRepo: courierRepo,
		handler:     handler,
		cron:        cron.New(),
		logger:      logger.With("component", "score_refresh_job"),
	}
}

// Start begins the score refresh job to run every minute.
func (j *ScoreRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.refreshStaleScores)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Score refresh job started (running every minute)")
	return nil
}

// Stop stops the score refresh job.
func (j *ScoreRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Score refresh job stopped")
}

// refreshStaleScores recomputes every flagged courier independently, so one
// failing courier does not block the rest of the batch.
func (j *ScoreRefreshJob) refreshStaleScores() {
	ctx := context.Background()

	courierIDs, err := j.courierRepo.GetStaleCourierIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Score refresh job failed to list stale couriers", "error", err)
		return
	}

	for _, courierID := range courierIDs {
		cmd, err := commands.NewRecalculateScoreCommand(courierID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Score refresh job built an invalid command",
				"courier_id", courierID.String(), "error", err)
			continue
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Score refresh job failed to recalculate",
				"courier_id", courierID.String(), "error", err)
		}
	}
}
