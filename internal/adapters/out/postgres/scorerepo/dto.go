// Package scorerepo persists computed reliability scores and earned badges.
// Scores are upserted keyed on courier ID; badges are append-only and keep
// their original earn date across recomputations.
package scorerepo

import (
	"time"

	"github.com/google/uuid"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
)

// ScoreDTO represents the database structure for one courier's score row.
type ScoreDTO struct {
	CourierID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SuccessRate       float64   `gorm:"not null"`
	OnTimeRate        float64   `gorm:"not null"`
	CustomerRatingAvg float64   `gorm:"not null"`
	IncidentRate      float64   `gorm:"not null"`
	Verified          bool      `gorm:"not null"`
	TenureMonths      int       `gorm:"not null"`
	Overall           int       `gorm:"not null"`
	Tier              string    `gorm:"type:varchar(16);not null"`
	ComputedAt        time.Time `gorm:"not null"`

	Badges []BadgeDTO `gorm:"foreignKey:CourierID;references:CourierID"`
}

// TableName specifies the database table name for score entities.
func (ScoreDTO) TableName() string {
	return "courier_scores"
}

// BadgeDTO represents one earned badge. The (courier_id, badge_id) pair is
// the upsert key; EarnedAt never changes once written.
type BadgeDTO struct {
	CourierID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BadgeID     string    `gorm:"type:varchar(64);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(512);not null"`
	Icon        string    `gorm:"type:varchar(64);not null"`
	EarnedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for badge entities.
func (BadgeDTO) TableName() string {
	return "courier_badges"
}

// fromDomain converts a score aggregate to its database representation.
func fromDomain(score *scoring.ReliabilityScore) (ScoreDTO, []BadgeDTO) {
	courierID := score.CourierID().Bytes()
	metrics := score.Metrics()

	badges := make([]BadgeDTO, 0, len(score.Badges()))
	for _, badge := range score.Badges() {
		badges = append(badges, BadgeDTO{
			CourierID:   courierID,
			BadgeID:     badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    badge.EarnedAt,
		})
	}

	return ScoreDTO{
		CourierID:         courierID,
		SuccessRate:       metrics.SuccessRate,
		OnTimeRate:        metrics.OnTimeRate,
		CustomerRatingAvg: metrics.CustomerRatingAvg,
		IncidentRate:      metrics.IncidentRate,
		Verified:          metrics.Verified,
		TenureMonths:      metrics.TenureMonths,
		Overall:           score.Overall(),
		Tier:              score.Tier().String(),
		ComputedAt:        score.ComputedAt(),
	}, badges
}

// toDomain converts a database DTO back into a score aggregate.
func toDomain(dto ScoreDTO) (*scoring.ReliabilityScore, error) {
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	tier, err := scoring.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}

	badges := make([]scoring.Badge, 0, len(dto.Badges))
	for _, badge := range dto.Badges {
		badges = append(badges, scoring.Badge{
			ID:          badge.BadgeID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    badge.EarnedAt,
		})
	}

	return scoring.RestoreReliabilityScore(courierID, scoring.Metrics{
		SuccessRate:       dto.SuccessRate,
		OnTimeRate:        dto.OnTimeRate,
		CustomerRatingAvg: dto.CustomerRatingAvg,
		IncidentRate:      dto.IncidentRate,
		Verified:          dto.Verified,
		TenureMonths:      dto.TenureMonths,
	}, dto.Overall, tier, badges, dto.ComputedAt)
}
