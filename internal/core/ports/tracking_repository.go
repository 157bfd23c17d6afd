package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
)

// TrackingLinkRepository persists shareable tracking links. A delivery may
// hold any number of live links at once.
type TrackingLinkRepository interface {
	// Add stores a freshly created link with a zero view count.
	Add(ctx context.Context, link *tracking.Link) error

	// GetActiveByCode retrieves the active link for a share code.
	// Returns ObjectNotFoundError when no active link carries the code.
	// Expiry is checked by the caller, not here.
	GetActiveByCode(ctx context.Context, code string) (*tracking.Link, error)

	// IncrementViewCount bumps the link's view counter by one in a single
	// in-place update, so concurrent resolutions never lose a view.
	IncrementViewCount(ctx context.Context, linkID kernel.UUID) error

	// Deactivate turns the link for a share code off.
	// Returns ObjectNotFoundError when no active link carries the code.
	Deactivate(ctx context.Context, code string) error
}

// TrackingUpdateRepository persists the append-only courier position feed.
type TrackingUpdateRepository interface {
	// Add appends one position update for a delivery.
	Add(ctx context.Context, update tracking.Update) error

	// GetLatestByDelivery returns up to limit updates newest-first.
	GetLatestByDelivery(ctx context.Context, deliveryID kernel.UUID, limit int) ([]tracking.Update, error)
}

// DeliverySnapshotReader serves the public-facing delivery view that a
// resolved link exposes.
type DeliverySnapshotReader interface {
	// GetSnapshot loads the delivery's current status and courier details.
	// Returns ObjectNotFoundError when the delivery does not exist.
	GetSnapshot(ctx context.Context, deliveryID kernel.UUID) (tracking.DeliverySnapshot, error)
}
