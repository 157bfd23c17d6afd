package commands

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/core/ports"
)

// RecalculateScoreCommandHandler recomputes a courier's reliability score
// from their full delivery history and persists the result.
//
// The write is a dual one: first the score row is upserted, then the
// denormalized summary on the courier row is refreshed and its stale flag
// cleared. A summary failure is surfaced to the caller, but the score row
// it follows stays written; the stale flag stays set so the sweep retries.
//
// Example:
//
//	handler := NewRecalculateScoreCommandHandler(courierRepo, scoreRepo)
//	cmd, _ := NewRecalculateScoreCommand(courierID)
//
//	score, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("score recalculation failed: %w", err)
//	}
//	fmt.Printf("Courier is now %s with %d points\n", score.Tier(), score.Overall())
type RecalculateScoreCommandHandler struct {
	courierRepo ports.CourierRepository
	scoreRepo   ports.ScoreRepository
}

// NewRecalculateScoreCommandHandler creates a handler for score recalculation.
func NewRecalculateScoreCommandHandler(
	courierRepo ports.CourierRepository,
	scoreRepo ports.ScoreRepository,
) RecalculateScoreCommandHandler {
	return RecalculateScoreCommandHandler{
		courierRepo: courierRepo,
		scoreRepo:   scoreRepo,
	}
}

// Handle recomputes and persists the score.
// Returns ObjectNotFoundError when the courier does not exist.
func (h RecalculateScoreCommandHandler) Handle(
	ctx context.Context,
	cmd RecalculateScoreCommand,
) (*scoring.ReliabilityScore, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	history, err := h.courierRepo.GetHistory(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	score, err := scoring.ComputeReliabilityScore(cmd.CourierID(), history, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = h.scoreRepo.Upsert(ctx, score); err != nil {
		return nil, err
	}

	if err = h.courierRepo.UpdateScoreSummary(ctx, cmd.CourierID(), score.Overall(), score.Tier()); err != nil {
		return nil, err
	}

	return score, nil
}
