package queries

import (
	"context"
	"errors"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/ports"
	"courier-trust/internal/pkg/errs"
)

// GetScoreQueryHandler serves courier reliability scores. The cached score
// row is the fast path; a courier with no cached row yet falls back to a
// full recalculation, so the first read after onboarding still answers.
//
// Example:
//
//	handler := NewGetScoreQueryHandler(scoreRepo, recalcHandler)
//	query, _ := NewGetScoreQuery(courierID)
//
//	score, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get score: %w", err)
//	}
//	fmt.Printf("%s: %d (%s)\n", score.CourierID, score.Overall, score.Tier)
type GetScoreQueryHandler struct {
	scoreRepo     ports.ScoreRepository
	recalcHandler commands.RecalculateScoreCommandHandler
}

// NewGetScoreQueryHandler creates a handler for score reads.
func NewGetScoreQueryHandler(
	scoreRepo ports.ScoreRepository,
	recalcHandler commands.RecalculateScoreCommandHandler,
) GetScoreQueryHandler {
	return GetScoreQueryHandler{
		scoreRepo:     scoreRepo,
		recalcHandler: recalcHandler,
	}
}

// Handle returns the courier's score, computing it on a cache miss.
// Returns ObjectNotFoundError when the courier itself does not exist.
func (h GetScoreQueryHandler) Handle(
	ctx context.Context,
	query GetScoreQuery,
) (GetScoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScoreQueryResponse{}, err
	}

	score, err := h.scoreRepo.Get(ctx, query.CourierID())
	if err == nil {
		return scoreResponseFromDomain(score), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return GetScoreQueryResponse{}, err
	}

	cmd, err := commands.NewRecalculateScoreCommand(query.CourierID())
	if err != nil {
		return GetScoreQueryResponse{}, err
	}

	score, err = h.recalcHandler.Handle(ctx, cmd)
	if err != nil {
		return GetScoreQueryResponse{}, err
	}

	return scoreResponseFromDomain(score), nil
}
