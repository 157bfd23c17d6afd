package scoring

import (
	"errors"
	"math"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/guard"
)

const (
	// verificationBonusPoints is added to the overall score for identity-verified couriers.
	verificationBonusPoints = 10
	// experienceBonusCapMonths caps the tenure contribution at ten 30-day periods.
	experienceBonusCapMonths = 10
	// tenurePeriodDays is the length of one whole tenure period.
	tenurePeriodDays = 30

	scoreMin = 0
	scoreMax = 100
)

// Weights of the composite score components.
const (
	successWeight  = 0.25
	onTimeWeight   = 0.20
	ratingWeight   = 0.25
	incidentWeight = 0.15
)

// ErrScoreIsNotConstructed is returned when using an improperly initialized ReliabilityScore.
var ErrScoreIsNotConstructed = errors.New(
	"ReliabilityScore must be created via ComputeReliabilityScore or RestoreReliabilityScore")

// DeliveryRecord is one historical delivery outcome used as scoring input.
type DeliveryRecord struct {
	// Succeeded reports whether the delivery completed successfully.
	Succeeded bool
	// Late reports whether the delivery was flagged as late.
	Late bool
	// Rating holds the customer rating (1..5) when the customer left one.
	Rating *float64
}

// History is the full scoring input loaded for one courier.
type History struct {
	// Deliveries is every delivery the courier has performed.
	Deliveries []DeliveryRecord
	// IncidentCount is the number of incidents filed against the courier.
	IncidentCount int
	// Verified reports whether the courier passed identity verification.
	Verified bool
	// JoinedAt is when the courier account was created.
	JoinedAt time.Time
}

// Metrics holds the five sub-metrics the composite score is built from.
// All rates are percentages in [0,100].
type Metrics struct {
	SuccessRate       float64
	OnTimeRate        float64
	CustomerRatingAvg float64
	IncidentRate      float64
	Verified          bool
	TenureMonths      int
}

// ReliabilityScore is the aggregate root of the scoring engine. It carries the
// computed sub-metrics, the derived overall score and tier, and the courier's
// earned badges.
//
// Invariants:
//   - overall score is always clamped to [0,100]
//   - tier is a pure function of the overall score with fixed breakpoints
//   - badges are append-only and never removed
//
// A score is recomputed on demand (cache miss or explicit trigger) and
// persisted by upsert keyed on courier ID. There is no automatic staleness
// policy; writes that change the inputs must flag the courier for
// recomputation.
type ReliabilityScore struct {
	courierID  kernel.UUID
	metrics    Metrics
	overall    int
	tier       Tier
	badges     []Badge
	computedAt time.Time

	guard guard.ConstructorGuard
}

// ComputeReliabilityScore builds a fresh score from a courier's history.
//
// Metric rules:
//   - successRate and onTimeRate are 100 when the courier has no deliveries
//   - incidentRate is 0 when the courier has no deliveries
//   - customerRatingAvg is the mean of rated deliveries, 5.0 when none are rated
//   - verification adds a flat 10 points
//   - each whole 30-day period of tenure adds 0.5 points, capped at 10 periods
//
// The overall score is rounded and clamped to [0,100]; the tier follows from
// the fixed breakpoints. Badge qualification is evaluated against the same
// history and stamped with now.
func ComputeReliabilityScore(courierID kernel.UUID, history History, now time.Time) (*ReliabilityScore, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	total := len(history.Deliveries)
	var successful, onTime, rated int
	var ratingSum float64
	for _, d := range history.Deliveries {
		if d.Succeeded {
			successful++
		}
		if !d.Late {
			onTime++
		}
		if d.Rating != nil {
			rated++
			ratingSum += *d.Rating
		}
	}

	metrics := Metrics{
		SuccessRate:       100,
		OnTimeRate:        100,
		CustomerRatingAvg: 5.0,
		IncidentRate:      0,
		Verified:          history.Verified,
		TenureMonths:      tenureMonths(history.JoinedAt, now),
	}
	if total > 0 {
		metrics.SuccessRate = float64(successful) / float64(total) * 100
		metrics.OnTimeRate = float64(onTime) / float64(total) * 100
		metrics.IncidentRate = float64(history.IncidentCount) / float64(total) * 100
	}
	if rated > 0 {
		metrics.CustomerRatingAvg = ratingSum / float64(rated)
	}

	overall := overallScore(metrics)

	return &ReliabilityScore{
		courierID:  courierID,
		metrics:    metrics,
		overall:    overall,
		tier:       TierForScore(overall),
		badges:     accrueBadges(metrics, successful, rated, now),
		computedAt: now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreReliabilityScore reconstructs a score aggregate from persistence.
// Unlike ComputeReliabilityScore it performs no metric computation; the stored
// values are taken as-is after validation.
func RestoreReliabilityScore(
	courierID kernel.UUID,
	metrics Metrics,
	overall int,
	tier Tier,
	badges []Badge,
	computedAt time.Time,
) (*ReliabilityScore, error) {
	if err := errors.Join(courierID.Validate(), tier.Validate()); err != nil {
		return nil, err
	}

	return &ReliabilityScore{
		courierID:  courierID,
		metrics:    metrics,
		overall:    clamp(overall),
		tier:       tier,
		badges:     badges,
		computedAt: computedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the aggregate was created through one of its constructors.
func (s *ReliabilityScore) Validate() error {
	if s == nil {
		return ErrScoreIsNotConstructed
	}
	return s.guard.Validate(ErrScoreIsNotConstructed)
}

// CourierID returns the scored courier's identifier.
func (s *ReliabilityScore) CourierID() kernel.UUID {
	return s.courierID
}

// Metrics returns the five sub-metrics behind the composite score.
func (s *ReliabilityScore) Metrics() Metrics {
	return s.metrics
}

// Overall returns the composite score in [0,100].
func (s *ReliabilityScore) Overall() int {
	return s.overall
}

// Tier returns the trust tier derived from the overall score.
func (s *ReliabilityScore) Tier() Tier {
	return s.tier
}

// Badges returns the earned badges.
func (s *ReliabilityScore) Badges() []Badge {
	return s.badges
}

// ComputedAt returns when the score was last computed.
func (s *ReliabilityScore) ComputedAt() time.Time {
	return s.computedAt
}

// overallScore combines the metrics into the clamped composite score.
func overallScore(m Metrics) int {
	verificationBonus := 0.0
	if m.Verified {
		verificationBonus = verificationBonusPoints
	}
	experienceBonus := float64(min(m.TenureMonths, experienceBonusCapMonths))

	raw := m.SuccessRate*successWeight +
		m.OnTimeRate*onTimeWeight +
		(m.CustomerRatingAvg/5*100)*ratingWeight +
		(100-m.IncidentRate)*incidentWeight +
		verificationBonus +
		experienceBonus*0.5

	return clamp(int(math.Round(raw)))
}

// tenureMonths counts whole 30-day periods between joinedAt and now,
// never negative.
func tenureMonths(joinedAt, now time.Time) int {
	if joinedAt.After(now) {
		return 0
	}
	return int(now.Sub(joinedAt).Hours() / 24 / tenurePeriodDays)
}

func clamp(score int) int {
	if score < scoreMin {
		return scoreMin
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}
