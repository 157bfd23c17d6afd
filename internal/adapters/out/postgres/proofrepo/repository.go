package proofrepo

import (
	"context"

	"gorm.io/gorm"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
	"courier-trust/internal/pkg/errs"
)

// GormProofRepository implements ProofRepository using GORM.
type GormProofRepository struct {
	db *gorm.DB
}

// NewGormProofRepository creates a new GORM proof repository.
func NewGormProofRepository(db *gorm.DB) *GormProofRepository {
	return &GormProofRepository{db: db}
}

// AddArtifact saves one uploaded proof photo.
func (r *GormProofRepository) AddArtifact(ctx context.Context, artifact *proof.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return err
	}

	dto := artifactFromDomain(artifact)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert proof artifact", err)
	}

	return nil
}

// GetArtifactsByDelivery lists a delivery's artifacts oldest first.
func (r *GormProofRepository) GetArtifactsByDelivery(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]*proof.Artifact, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ArtifactDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("captured_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	artifacts := make([]*proof.Artifact, 0, len(dtos))
	for _, dto := range dtos {
		artifact, err := artifactToDomain(dto)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// AddSignature saves the signer details for a signature artifact.
func (r *GormProofRepository) AddSignature(ctx context.Context, record proof.SignatureRecord) error {
	dto := SignatureDTO{
		DeliveryID:  record.DeliveryID.Bytes(),
		ArtifactID:  record.ArtifactID.Bytes(),
		SignerName:  record.SignerName,
		SignerPhone: record.SignerPhone,
		SignedAt:    record.SignedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert proof signature", err)
	}

	return nil
}
