package tracking

import (
	"errors"
	"fmt"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

// DefaultExpiryHours is the share-link lifetime applied when the caller does
// not specify one.
const DefaultExpiryHours = 24

// ErrLinkIsNotConstructed is returned when using an improperly initialized Link.
var ErrLinkIsNotConstructed = errors.New("Link must be created via NewLink or RestoreLink")

// Visibility holds the four independent flags controlling what a public
// viewer of the link can see.
type Visibility struct {
	DriverName  bool
	DriverPhone bool
	DriverPhoto bool
	ETA         bool
}

// Options configures link creation. Nil fields take their defaults:
// name and photo and ETA visible, phone hidden, expiry 24 hours.
type Options struct {
	ShowDriverName  *bool
	ShowDriverPhone *bool
	ShowDriverPhoto *bool
	ShowETA         *bool
	ExpiresInHours  *int
}

// visibilityFromOptions applies the documented defaults for unset flags.
func visibilityFromOptions(opts Options) Visibility {
	v := Visibility{
		DriverName:  true,
		DriverPhone: false,
		DriverPhoto: true,
		ETA:         true,
	}
	if opts.ShowDriverName != nil {
		v.DriverName = *opts.ShowDriverName
	}
	if opts.ShowDriverPhone != nil {
		v.DriverPhone = *opts.ShowDriverPhone
	}
	if opts.ShowDriverPhoto != nil {
		v.DriverPhoto = *opts.ShowDriverPhoto
	}
	if opts.ShowETA != nil {
		v.ETA = *opts.ShowETA
	}
	return v
}

// Link is the aggregate root for one shareable tracking link. A link is
// created once per share request; a delivery may have any number of live
// links. Each successful resolution increments the view counter by exactly
// one, and resolution is rejected once expiresAt has passed even while
// isActive is still true.
type Link struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	code       string
	shareURL   string
	visibility Visibility
	isActive   bool
	expiresAt  time.Time
	viewCount  int
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewLink mints a fresh link for a delivery. A random share code is
// generated, the share URL is the base origin with "/track/{code}" appended,
// and expiry defaults to 24 hours from now.
func NewLink(
	id kernel.UUID,
	deliveryID kernel.UUID,
	baseOrigin string,
	opts Options,
	now time.Time,
) (*Link, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}
	if baseOrigin == "" {
		return nil, errs.NewValueIsRequiredError("baseOrigin")
	}

	expiresIn := DefaultExpiryHours
	if opts.ExpiresInHours != nil {
		if *opts.ExpiresInHours <= 0 {
			return nil, errs.NewValueIsInvalidError("expiresInHours")
		}
		expiresIn = *opts.ExpiresInHours
	}

	code := GenerateShareCode()

	return &Link{
		id:         id,
		deliveryID: deliveryID,
		code:       code,
		shareURL:   fmt.Sprintf("%s/track/%s", baseOrigin, code),
		visibility: visibilityFromOptions(opts),
		isActive:   true,
		expiresAt:  now.Add(time.Duration(expiresIn) * time.Hour),
		viewCount:  0,
		createdAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreLink reconstructs a link from persistence.
func RestoreLink(
	id kernel.UUID,
	deliveryID kernel.UUID,
	code string,
	shareURL string,
	visibility Visibility,
	isActive bool,
	expiresAt time.Time,
	viewCount int,
	createdAt time.Time,
) (*Link, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}
	if len(code) != ShareCodeLength {
		return nil, errs.NewValueIsInvalidError("code")
	}

	return &Link{
		id:         id,
		deliveryID: deliveryID,
		code:       code,
		shareURL:   shareURL,
		visibility: visibility,
		isActive:   isActive,
		expiresAt:  expiresAt,
		viewCount:  viewCount,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the aggregate was created through one of its constructors.
func (l *Link) Validate() error {
	if l == nil {
		return ErrLinkIsNotConstructed
	}
	return l.guard.Validate(ErrLinkIsNotConstructed)
}

// IsExpired reports whether the link can no longer be resolved.
// Expiry wins over the active flag.
func (l *Link) IsExpired(now time.Time) bool {
	return now.After(l.expiresAt)
}

// Deactivate turns the link off. Used for share revocation; expired links
// do not need deactivation since expiry is enforced at read time.
func (l *Link) Deactivate() {
	l.isActive = false
}

// ID returns the link identifier.
func (l *Link) ID() kernel.UUID {
	return l.id
}

// DeliveryID returns the tracked delivery's identifier.
func (l *Link) DeliveryID() kernel.UUID {
	return l.deliveryID
}

// Code returns the 6-character share code.
func (l *Link) Code() string {
	return l.code
}

// ShareURL returns the full public URL for the link.
func (l *Link) ShareURL() string {
	return l.shareURL
}

// Visibility returns the viewer-facing visibility flags.
func (l *Link) Visibility() Visibility {
	return l.visibility
}

// IsActive reports whether the link is switched on.
func (l *Link) IsActive() bool {
	return l.isActive
}

// ExpiresAt returns when the link stops resolving.
func (l *Link) ExpiresAt() time.Time {
	return l.expiresAt
}

// ViewCount returns the number of successful resolutions.
func (l *Link) ViewCount() int {
	return l.viewCount
}

// CreatedAt returns when the link was minted.
func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}
