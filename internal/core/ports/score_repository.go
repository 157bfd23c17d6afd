package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
)

// ScoreRepository persists computed reliability scores.
type ScoreRepository interface {
	// Upsert writes the score keyed on courier ID. Badges are upserted by
	// badge ID so an already earned badge keeps its original EarnedAt.
	Upsert(ctx context.Context, score *scoring.ReliabilityScore) error

	// Get retrieves the cached score for a courier.
	// Returns ObjectNotFoundError when no score has been computed yet.
	Get(ctx context.Context, courierID kernel.UUID) (*scoring.ReliabilityScore, error)
}
