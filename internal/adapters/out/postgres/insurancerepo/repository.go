package insurancerepo

import (
	"context"

	"gorm.io/gorm"

	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/pkg/errs"
)

// GormPolicyRepository implements PolicyRepository using GORM.
type GormPolicyRepository struct {
	db *gorm.DB
}

// NewGormPolicyRepository creates a new GORM policy repository.
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{db: db}
}

// Add saves a newly issued policy. The store's error message is passed
// through untouched; issuing is never retried.
func (r *GormPolicyRepository) Add(ctx context.Context, policy *insurance.Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	dto := policyFromDomain(policy)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert policy", err)
	}

	return nil
}

// GormClaimRepository implements ClaimRepository using GORM.
type GormClaimRepository struct {
	db *gorm.DB
}

// NewGormClaimRepository creates a new GORM claim repository.
func NewGormClaimRepository(db *gorm.DB) *GormClaimRepository {
	return &GormClaimRepository{db: db}
}

// Add saves a newly filed claim.
func (r *GormClaimRepository) Add(ctx context.Context, claim *insurance.Claim) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	dto := claimFromDomain(claim)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert claim", err)
	}

	return nil
}
