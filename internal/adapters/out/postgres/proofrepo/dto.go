// Package proofrepo persists delivery proof artifacts and signature records.
package proofrepo

import (
	"time"

	"github.com/google/uuid"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
)

// ArtifactDTO represents the database structure for proof artifacts.
// Rows are immutable; failed submissions never delete what earlier steps
// wrote.
type ArtifactDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PhotoType  string    `gorm:"type:varchar(16);not null"`
	URL        string    `gorm:"type:varchar(512);not null"`
	HasPackage bool      `gorm:"not null"`
	HasPerson  bool      `gorm:"not null"`
	Confidence float64   `gorm:"not null"`
	Verified   bool      `gorm:"not null"`
	Latitude   *float64  `gorm:"type:double precision"`
	Longitude  *float64  `gorm:"type:double precision"`
	CapturedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for artifact entities.
func (ArtifactDTO) TableName() string {
	return "proof_artifacts"
}

// SignatureDTO represents the signer details behind a signature artifact.
type SignatureDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtifactID  uuid.UUID `gorm:"type:uuid;not null"`
	SignerName  string    `gorm:"type:varchar(255);not null"`
	SignerPhone string    `gorm:"type:varchar(32)"`
	SignedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for signature entities.
func (SignatureDTO) TableName() string {
	return "proof_signatures"
}

func artifactFromDomain(artifact *proof.Artifact) ArtifactDTO {
	analysis := artifact.Analysis()

	var latitude, longitude *float64
	if location := artifact.Location(); location != nil {
		lat, lon := location.Latitude(), location.Longitude()
		latitude, longitude = &lat, &lon
	}

	return ArtifactDTO{
		ID:         artifact.ID().Bytes(),
		DeliveryID: artifact.DeliveryID().Bytes(),
		CourierID:  artifact.CourierID().Bytes(),
		PhotoType:  artifact.PhotoType().String(),
		URL:        artifact.URL(),
		HasPackage: analysis.HasPackage,
		HasPerson:  analysis.HasPerson,
		Confidence: analysis.Confidence,
		Verified:   artifact.Verified(),
		Latitude:   latitude,
		Longitude:  longitude,
		CapturedAt: artifact.CapturedAt(),
	}
}

func artifactToDomain(dto ArtifactDTO) (*proof.Artifact, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	photoType, err := proof.PhotoTypeFromString(dto.PhotoType)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		location = &point
	}

	return proof.RestoreArtifact(
		id, deliveryID, courierID, photoType, dto.URL,
		proof.Analysis{
			HasPackage: dto.HasPackage,
			HasPerson:  dto.HasPerson,
			Confidence: dto.Confidence,
		},
		dto.Verified, location, dto.CapturedAt), nil
}
