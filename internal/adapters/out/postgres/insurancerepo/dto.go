// Package insurancerepo persists insurance policies and claims.
package insurancerepo

import (
	"time"

	"github.com/google/uuid"

	"courier-trust/internal/core/domain/model/insurance"
)

// PolicyDTO represents the database structure for persisting policies.
// Monetary amounts are minor currency units.
type PolicyDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tier          string    `gorm:"type:varchar(16);not null"`
	DeclaredValue int64     `gorm:"not null"`
	Premium       int64     `gorm:"not null"`
	Coverage      int64     `gorm:"not null"`
	IsActive      bool      `gorm:"not null"`
	ActivatedAt   time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for policy entities.
func (PolicyDTO) TableName() string {
	return "insurance_policies"
}

// ClaimDTO represents the database structure for persisting claims.
// Evidence URLs are stored as a JSON document.
type ClaimDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PolicyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FilerID       uuid.UUID `gorm:"type:uuid;not null"`
	ClaimType     string    `gorm:"type:varchar(16);not null"`
	Description   string    `gorm:"type:text;not null"`
	EvidenceURLs  []string  `gorm:"type:jsonb;serializer:json"`
	ClaimedAmount int64     `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null"`
	FiledAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for claim entities.
func (ClaimDTO) TableName() string {
	return "insurance_claims"
}

func policyFromDomain(policy *insurance.Policy) PolicyDTO {
	return PolicyDTO{
		ID:            policy.ID().Bytes(),
		DeliveryID:    policy.DeliveryID().Bytes(),
		Tier:          policy.Tier().String(),
		DeclaredValue: policy.DeclaredValue(),
		Premium:       policy.Premium(),
		Coverage:      policy.Coverage(),
		IsActive:      policy.IsActive(),
		ActivatedAt:   policy.ActivatedAt(),
		ExpiresAt:     policy.ExpiresAt(),
	}
}

func claimFromDomain(claim *insurance.Claim) ClaimDTO {
	return ClaimDTO{
		ID:            claim.ID().Bytes(),
		PolicyID:      claim.PolicyID().Bytes(),
		DeliveryID:    claim.DeliveryID().Bytes(),
		FilerID:       claim.FilerID().Bytes(),
		ClaimType:     claim.Type().String(),
		Description:   claim.Description(),
		EvidenceURLs:  claim.EvidenceURLs(),
		ClaimedAmount: claim.ClaimedAmount(),
		Status:        claim.Status(),
		FiledAt:       claim.FiledAt(),
	}
}
