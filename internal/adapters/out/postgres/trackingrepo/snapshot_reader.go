package trackingrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"
)

// GormDeliverySnapshotReader reads the public delivery view with a direct
// SQL join over the deliveries and couriers tables.
type GormDeliverySnapshotReader struct {
	db *gorm.DB
}

// NewGormDeliverySnapshotReader creates a new snapshot reader.
func NewGormDeliverySnapshotReader(db *gorm.DB) *GormDeliverySnapshotReader {
	return &GormDeliverySnapshotReader{db: db}
}

// GetSnapshot loads the delivery status and courier details behind a link.
func (r *GormDeliverySnapshotReader) GetSnapshot(
	ctx context.Context,
	deliveryID kernel.UUID,
) (tracking.DeliverySnapshot, error) {
	if err := deliveryID.Validate(); err != nil {
		return tracking.DeliverySnapshot{}, err
	}

	row := r.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.recipient_name,
			d.estimated_arrival,
			c.name,
			c.phone,
			c.photo_url
		FROM deliveries d
		JOIN couriers c ON c.id = d.courier_id
		WHERE d.id = ?
	`, deliveryID.Bytes()).Row()

	var (
		rawID            uuid.UUID
		status           string
		recipientName    string
		estimatedArrival sql.NullTime
		courierName      string
		courierPhone     string
		courierPhotoURL  string
	)
	if err := row.Scan(
		&rawID, &status, &recipientName, &estimatedArrival,
		&courierName, &courierPhone, &courierPhotoURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tracking.DeliverySnapshot{}, errs.NewObjectNotFoundError("delivery", deliveryID.String())
		}
		return tracking.DeliverySnapshot{}, err
	}

	var eta *time.Time
	if estimatedArrival.Valid {
		eta = &estimatedArrival.Time
	}

	return tracking.DeliverySnapshot{
		DeliveryID:       deliveryID,
		Status:           status,
		CourierName:      courierName,
		CourierPhone:     courierPhone,
		CourierPhotoURL:  courierPhotoURL,
		EstimatedArrival: eta,
		RecipientName:    recipientName,
	}, nil
}
