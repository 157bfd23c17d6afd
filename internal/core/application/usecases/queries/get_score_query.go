// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/guard"
)

var ErrGetScoreQueryIsNotConstructed = errors.New(
	"GetScoreQuery must be created via NewGetScoreQuery constructor",
)

// GetScoreQuery retrieves a courier's reliability score.
// Serves the cached score when one exists; a courier who has never been
// scored gets a fresh computation on the spot.
//
// Example:
//
//	query, err := NewGetScoreQuery(courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid score request: %w", err)
//	}
//
//	handler := NewGetScoreQueryHandler(scoreRepo, recalcHandler)
//	score, err := handler.Handle(ctx, query)
type GetScoreQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetScoreQuery creates a query for one courier's score.
func NewGetScoreQuery(courierID kernel.UUID) (GetScoreQuery, error) {
	query := GetScoreQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return GetScoreQuery{}, err
	}
	query.courierID = courierID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetScoreQueryIsNotConstructed if validation fails.
func (q GetScoreQuery) Validate() error {
	return q.guard.Validate(ErrGetScoreQueryIsNotConstructed)
}

// CourierID returns the courier whose score is requested.
func (q GetScoreQuery) CourierID() kernel.UUID {
	return q.courierID
}

// BadgeResponse is one earned badge in the score read model.
type BadgeResponse struct {
	ID          string
	Name        string
	Description string
	Icon        string
	EarnedAt    time.Time
}

// GetScoreQueryResponse is the score read model served to callers.
type GetScoreQueryResponse struct {
	CourierID         kernel.UUID
	SuccessRate       float64
	OnTimeRate        float64
	CustomerRatingAvg float64
	IncidentRate      float64
	Verified          bool
	TenureMonths      int
	Overall           int
	Tier              string
	Badges            []BadgeResponse
	ComputedAt        time.Time
}

func scoreResponseFromDomain(score *scoring.ReliabilityScore) GetScoreQueryResponse {
	metrics := score.Metrics()

	badges := make([]BadgeResponse, 0, len(score.Badges()))
	for _, badge := range score.Badges() {
		badges = append(badges, BadgeResponse{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    badge.EarnedAt,
		})
	}

	return GetScoreQueryResponse{
		CourierID:         score.CourierID(),
		SuccessRate:       metrics.SuccessRate,
		OnTimeRate:        metrics.OnTimeRate,
		CustomerRatingAvg: metrics.CustomerRatingAvg,
		IncidentRate:      metrics.IncidentRate,
		Verified:          metrics.Verified,
		TenureMonths:      metrics.TenureMonths,
		Overall:           score.Overall(),
		Tier:              score.Tier().String(),
		Badges:            badges,
		ComputedAt:        score.ComputedAt(),
	}
}
