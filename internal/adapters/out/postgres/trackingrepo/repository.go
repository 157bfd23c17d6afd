package trackingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"
)

// GormTrackingLinkRepository implements TrackingLinkRepository using GORM.
type GormTrackingLinkRepository struct {
	db *gorm.DB
}

// NewGormTrackingLinkRepository creates a new GORM tracking link repository.
func NewGormTrackingLinkRepository(db *gorm.DB) *GormTrackingLinkRepository {
	return &GormTrackingLinkRepository{db: db}
}

// Add saves a freshly created link.
func (r *GormTrackingLinkRepository) Add(ctx context.Context, link *tracking.Link) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := linkFromDomain(link)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert tracking link", err)
	}

	return nil
}

// GetActiveByCode retrieves the active link carrying the share code.
func (r *GormTrackingLinkRepository) GetActiveByCode(
	ctx context.Context,
	code string,
) (*tracking.Link, error) {
	var dto LinkDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "code = ? AND is_active = ?", code, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return linkToDomain(dto)
}

// IncrementViewCount bumps the view counter in place. The single UPDATE
// keeps concurrent resolutions from losing views to a read-modify-write
// race.
func (r *GormTrackingLinkRepository) IncrementViewCount(ctx context.Context, linkID kernel.UUID) error {
	if err := linkID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LinkDTO{}).
		Where("id = ?", linkID.Bytes()).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return errs.NewPersistenceError("increment view count", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("link", linkID.String())
	}

	return nil
}

// Deactivate switches the active link for a code off.
func (r *GormTrackingLinkRepository) Deactivate(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).
		Model(&LinkDTO{}).
		Where("code = ? AND is_active = ?", code, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return errs.NewPersistenceError("deactivate tracking link", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("code", code)
	}

	return nil
}

// GormTrackingUpdateRepository implements TrackingUpdateRepository using GORM.
type GormTrackingUpdateRepository struct {
	db *gorm.DB
}

// NewGormTrackingUpdateRepository creates a new GORM tracking update repository.
func NewGormTrackingUpdateRepository(db *gorm.DB) *GormTrackingUpdateRepository {
	return &GormTrackingUpdateRepository{db: db}
}

// Add appends one position update.
func (r *GormTrackingUpdateRepository) Add(ctx context.Context, update tracking.Update) error {
	dto := updateFromDomain(update)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert tracking update", err)
	}

	return nil
}

// GetLatestByDelivery returns up to limit updates newest-first.
func (r *GormTrackingUpdateRepository) GetLatestByDelivery(
	ctx context.Context,
	deliveryID kernel.UUID,
	limit int,
) ([]tracking.Update, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UpdateDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	updates := make([]tracking.Update, 0, len(dtos))
	for _, dto := range dtos {
		update, err := updateToDomain(dto)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	return updates, nil
}
