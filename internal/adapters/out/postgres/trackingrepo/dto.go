// Package trackingrepo persists shareable tracking links and the courier
// position feed, and serves the public delivery snapshot behind a resolved
// link.
package trackingrepo

import (
	"time"

	"github.com/google/uuid"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
)

// LinkDTO represents the database structure for persisting tracking links.
type LinkDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Code            string    `gorm:"type:varchar(8);not null;uniqueIndex"`
	ShareURL        string    `gorm:"type:varchar(512);not null"`
	ShowDriverName  bool      `gorm:"not null"`
	ShowDriverPhone bool      `gorm:"not null"`
	ShowDriverPhoto bool      `gorm:"not null"`
	ShowETA         bool      `gorm:"not null"`
	IsActive        bool      `gorm:"not null;index"`
	ExpiresAt       time.Time `gorm:"not null"`
	ViewCount       int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for link entities.
func (LinkDTO) TableName() string {
	return "tracking_links"
}

// UpdateDTO represents one row of the append-only position feed.
type UpdateDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	Note       string    `gorm:"type:varchar(255)"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for update entities.
func (UpdateDTO) TableName() string {
	return "tracking_updates"
}

func linkFromDomain(link *tracking.Link) LinkDTO {
	visibility := link.Visibility()
	return LinkDTO{
		ID:              link.ID().Bytes(),
		DeliveryID:      link.DeliveryID().Bytes(),
		Code:            link.Code(),
		ShareURL:        link.ShareURL(),
		ShowDriverName:  visibility.DriverName,
		ShowDriverPhone: visibility.DriverPhone,
		ShowDriverPhoto: visibility.DriverPhoto,
		ShowETA:         visibility.ETA,
		IsActive:        link.IsActive(),
		ExpiresAt:       link.ExpiresAt(),
		ViewCount:       link.ViewCount(),
		CreatedAt:       link.CreatedAt(),
	}
}

func linkToDomain(dto LinkDTO) (*tracking.Link, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreLink(
		id, deliveryID, dto.Code, dto.ShareURL,
		tracking.Visibility{
			DriverName:  dto.ShowDriverName,
			DriverPhone: dto.ShowDriverPhone,
			DriverPhoto: dto.ShowDriverPhoto,
			ETA:         dto.ShowETA,
		},
		dto.IsActive, dto.ExpiresAt, dto.ViewCount, dto.CreatedAt)
}

func updateFromDomain(update tracking.Update) UpdateDTO {
	return UpdateDTO{
		DeliveryID: update.DeliveryID.Bytes(),
		Latitude:   update.Position.Latitude(),
		Longitude:  update.Position.Longitude(),
		Note:       update.Note,
		RecordedAt: update.RecordedAt,
	}
}

func updateToDomain(dto UpdateDTO) (tracking.Update, error) {
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return tracking.Update{}, err
	}

	position, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return tracking.Update{}, err
	}

	return tracking.Update{
		DeliveryID: deliveryID,
		Position:   position,
		Note:       dto.Note,
		RecordedAt: dto.RecordedAt,
	}, nil
}
