// Package ports defines the contracts between the application layer and
// infrastructure: repositories, object storage and the evidence analyzer.
// Adapters implement these interfaces, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
)

// CourierRepository reads courier delivery history and maintains the
// denormalized score summary on the courier row.
type CourierRepository interface {
	// GetHistory loads everything a score recalculation needs for one
	// courier: the full delivery list with ratings, the incident count,
	// the verification flag and the join date.
	// Returns ObjectNotFoundError when the courier does not exist.
	GetHistory(ctx context.Context, courierID kernel.UUID) (scoring.History, error)

	// UpdateScoreSummary writes the freshly computed score and tier onto
	// the courier row and clears its stale flag in the same statement.
	UpdateScoreSummary(ctx context.Context, courierID kernel.UUID, overall int, tier scoring.Tier) error

	// GetStaleCourierIDs lists couriers whose summary is flagged stale.
	// An empty result is the normal case, not an error.
	GetStaleCourierIDs(ctx context.Context) ([]kernel.UUID, error)
}
