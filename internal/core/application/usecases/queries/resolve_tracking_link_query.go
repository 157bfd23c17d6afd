package queries

import (
	"errors"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

var ErrResolveTrackingLinkQueryIsNotConstructed = errors.New(
	"ResolveTrackingLinkQuery must be created via NewResolveTrackingLinkQuery constructor",
)

// ResolveTrackingLinkQuery turns a share code into the public tracking view.
// Resolution counts as a view, so handling this query bumps the link's view
// counter as a side effect.
type ResolveTrackingLinkQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewResolveTrackingLinkQuery creates a query to resolve a share code.
func NewResolveTrackingLinkQuery(code string) (ResolveTrackingLinkQuery, error) {
	query := ResolveTrackingLinkQuery{
		guard: guard.NewConstructorGuard(),
	}

	if len(code) != tracking.ShareCodeLength {
		return ResolveTrackingLinkQuery{}, errs.NewValueIsInvalidError("code")
	}
	query.code = code

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrResolveTrackingLinkQueryIsNotConstructed if validation fails.
func (q ResolveTrackingLinkQuery) Validate() error {
	return q.guard.Validate(ErrResolveTrackingLinkQueryIsNotConstructed)
}

// Code returns the share code being resolved.
func (q ResolveTrackingLinkQuery) Code() string {
	return q.code
}

// TrackingUpdateResponse is one position update in the tracking view.
type TrackingUpdateResponse struct {
	Latitude   float64
	Longitude  float64
	Note       string
	RecordedAt time.Time
}

// ResolveTrackingLinkQueryResponse is the public tracking view behind a
// share code. Fields the link's visibility settings hide are blank.
type ResolveTrackingLinkQueryResponse struct {
	DeliveryID       kernel.UUID
	Status           string
	CourierName      string
	CourierPhone     string
	CourierPhotoURL  string
	EstimatedArrival *time.Time
	RecipientName    string
	ExpiresAt        time.Time
	Updates          []TrackingUpdateResponse
}
