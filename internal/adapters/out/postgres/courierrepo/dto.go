// Package courierrepo provides data transfer objects and mapping functions for
// courier persistence. It implements the courier repository over the couriers,
// deliveries and incidents tables, serving score recalculation with the full
// delivery history and maintaining the denormalized score summary.
package courierrepo

import (
	"time"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for courier rows. The score
// and tier columns denormalize the latest computed reliability score; the
// score_stale flag marks couriers whose summary no longer matches their
// history.
type CourierDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(32)"`
	PhotoURL   string    `gorm:"type:varchar(512)"`
	Verified   bool      `gorm:"not null;default:false"`
	JoinedAt   time.Time `gorm:"not null"`
	Score      int       `gorm:"not null;default:0"`
	Tier       string    `gorm:"type:varchar(16);not null;default:'bronze'"`
	ScoreStale bool      `gorm:"not null;default:false;index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// DeliveryDTO represents one delivery row in the courier's history.
// Rating is nil when the customer never rated the delivery.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           string     `gorm:"type:varchar(32);not null"`
	RecipientName    string     `gorm:"type:varchar(255)"`
	EstimatedArrival *time.Time `gorm:""`
	Succeeded        bool       `gorm:"not null"`
	Late             bool       `gorm:"not null"`
	Rating           *float64   `gorm:"type:numeric(2,1)"`
	CreatedAt        time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// IncidentDTO represents one incident filed against a courier.
type IncidentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for incident entities.
func (IncidentDTO) TableName() string {
	return "incidents"
}
