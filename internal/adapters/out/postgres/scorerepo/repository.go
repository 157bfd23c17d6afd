package scorerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/errs"
)

// GormScoreRepository implements ScoreRepository using GORM.
type GormScoreRepository struct {
	db *gorm.DB
}

// NewGormScoreRepository creates a new GORM score repository.
func NewGormScoreRepository(db *gorm.DB) *GormScoreRepository {
	return &GormScoreRepository{db: db}
}

// Upsert writes the score row keyed on courier ID. Badges insert with
// do-nothing conflict handling so a badge earned earlier keeps its original
// earn date.
func (r *GormScoreRepository) Upsert(ctx context.Context, score *scoring.ReliabilityScore) error {
	if err := score.Validate(); err != nil {
		return err
	}

	dto, badges := fromDomain(score)

	if err := r.db.WithContext(ctx).
		Omit("Badges").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("upsert courier score", err)
	}

	if len(badges) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).
		Create(&badges).Error; err != nil {
		return errs.NewPersistenceError("upsert courier badges", err)
	}

	return nil
}

// Get retrieves the cached score with its badges.
func (r *GormScoreRepository) Get(
	ctx context.Context,
	courierID kernel.UUID,
) (*scoring.ReliabilityScore, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto ScoreDTO
	if err := r.db.WithContext(ctx).
		Preload("Badges").
		First(&dto, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("score", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
