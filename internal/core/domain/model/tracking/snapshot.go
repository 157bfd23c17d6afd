package tracking

import (
	"time"

	"courier-trust/internal/core/domain/model/kernel"
)

// DeliverySnapshot is the public-facing view of a delivery that a resolved
// tracking link exposes. Fields hidden by the link's visibility settings are
// blanked before the snapshot leaves the application layer.
type DeliverySnapshot struct {
	DeliveryID       kernel.UUID
	Status           string
	CourierName      string
	CourierPhone     string
	CourierPhotoURL  string
	EstimatedArrival *time.Time
	RecipientName    string
}

// ApplyVisibility blanks out the fields the link settings hide.
func (s DeliverySnapshot) ApplyVisibility(v Visibility) DeliverySnapshot {
	if !v.DriverName {
		s.CourierName = ""
	}
	if !v.DriverPhone {
		s.CourierPhone = ""
	}
	if !v.DriverPhoto {
		s.CourierPhotoURL = ""
	}
	if !v.ETA {
		s.EstimatedArrival = nil
	}
	return s
}
