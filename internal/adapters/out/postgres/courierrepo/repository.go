package courierrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// GetHistory loads the full scoring input for one courier.
func (r *GormCourierRepository) GetHistory(
	ctx context.Context,
	courierID kernel.UUID,
) (scoring.History, error) {
	if err := courierID.Validate(); err != nil {
		return scoring.History{}, err
	}

	var courier CourierDTO
	if err := r.db.WithContext(ctx).First(&courier, "id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scoring.History{}, errs.NewObjectNotFoundError("courier", courierID.String())
		}
		return scoring.History{}, err
	}

	var deliveries []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("created_at").
		Find(&deliveries).Error; err != nil {
		return scoring.History{}, err
	}

	var incidentCount int64
	if err := r.db.WithContext(ctx).
		Model(&IncidentDTO{}).
		Where("courier_id = ?", courierID.Bytes()).
		Count(&incidentCount).Error; err != nil {
		return scoring.History{}, err
	}

	records := make([]scoring.DeliveryRecord, 0, len(deliveries))
	for _, delivery := range deliveries {
		records = append(records, scoring.DeliveryRecord{
			Succeeded: delivery.Succeeded,
			Late:      delivery.Late,
			Rating:    delivery.Rating,
		})
	}

	return scoring.History{
		Deliveries:    records,
		IncidentCount: int(incidentCount),
		Verified:      courier.Verified,
		JoinedAt:      courier.JoinedAt,
	}, nil
}

// UpdateScoreSummary writes the computed score onto the courier row and
// clears the stale flag in the same statement.
func (r *GormCourierRepository) UpdateScoreSummary(
	ctx context.Context,
	courierID kernel.UUID,
	overall int,
	tier scoring.Tier,
) error {
	if err := errors.Join(courierID.Validate(), tier.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", courierID.Bytes()).
		Updates(map[string]any{
			"score":       overall,
			"tier":        tier.String(),
			"score_stale": false,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update courier score summary", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", courierID.String())
	}

	return nil
}

// GetStaleCourierIDs lists couriers flagged for score recomputation.
func (r *GormCourierRepository) GetStaleCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("score_stale = ?", true).
		Pluck("id", &rawIDs).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
