package tracking

import (
	"errors"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
)

// ResolveUpdateLimit caps how many recent position updates a resolve returns.
const ResolveUpdateLimit = 50

// Update is one recorded courier position for a delivery. Updates are
// append-only; resolve returns the most recent ones newest-first.
type Update struct {
	DeliveryID kernel.UUID
	Position   kernel.GeoPoint
	Note       string
	RecordedAt time.Time
}

// NewUpdate records a position update for a delivery. The note is optional.
func NewUpdate(deliveryID kernel.UUID, position kernel.GeoPoint, note string, now time.Time) (Update, error) {
	if err := errors.Join(deliveryID.Validate(), position.Validate()); err != nil {
		return Update{}, err
	}

	return Update{
		DeliveryID: deliveryID,
		Position:   position,
		Note:       note,
		RecordedAt: now,
	}, nil
}
