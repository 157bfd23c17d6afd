package queries

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/core/ports"
	"courier-trust/internal/pkg/errs"
)

// ResolveTrackingLinkQueryHandler serves the public tracking view.
//
// A code resolves only while its link is active and unexpired; an expired
// link answers not found even when it is still switched on. Every
// successful resolution increments the view counter through a single
// in-place update, so two phones opening the link at once both count.
type ResolveTrackingLinkQueryHandler struct {
	linkRepo       ports.TrackingLinkRepository
	updateRepo     ports.TrackingUpdateRepository
	snapshotReader ports.DeliverySnapshotReader
}

// NewResolveTrackingLinkQueryHandler creates a handler for link resolution.
func NewResolveTrackingLinkQueryHandler(
	linkRepo ports.TrackingLinkRepository,
	updateRepo ports.TrackingUpdateRepository,
	snapshotReader ports.DeliverySnapshotReader,
) ResolveTrackingLinkQueryHandler {
	return ResolveTrackingLinkQueryHandler{
		linkRepo:       linkRepo,
		updateRepo:     updateRepo,
		snapshotReader: snapshotReader,
	}
}

// Handle resolves the share code into the filtered tracking view with the
// latest position updates, newest first.
func (h ResolveTrackingLinkQueryHandler) Handle(
	ctx context.Context,
	query ResolveTrackingLinkQuery,
) (ResolveTrackingLinkQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveTrackingLinkQueryResponse{}, err
	}

	link, err := h.linkRepo.GetActiveByCode(ctx, query.Code())
	if err != nil {
		return ResolveTrackingLinkQueryResponse{}, err
	}

	if link.IsExpired(time.Now().UTC()) {
		return ResolveTrackingLinkQueryResponse{}, errs.NewObjectNotFoundError("code", query.Code())
	}

	if err = h.linkRepo.IncrementViewCount(ctx, link.ID()); err != nil {
		return ResolveTrackingLinkQueryResponse{}, err
	}

	snapshot, err := h.snapshotReader.GetSnapshot(ctx, link.DeliveryID())
	if err != nil {
		return ResolveTrackingLinkQueryResponse{}, err
	}
	snapshot = snapshot.ApplyVisibility(link.Visibility())

	updates, err := h.updateRepo.GetLatestByDelivery(ctx, link.DeliveryID(), tracking.ResolveUpdateLimit)
	if err != nil {
		return ResolveTrackingLinkQueryResponse{}, err
	}

	updateResponses := make([]TrackingUpdateResponse, 0, len(updates))
	for _, update := range updates {
		updateResponses = append(updateResponses, TrackingUpdateResponse{
			Latitude:   update.Position.Latitude(),
			Longitude:  update.Position.Longitude(),
			Note:       update.Note,
			RecordedAt: update.RecordedAt,
		})
	}

	return ResolveTrackingLinkQueryResponse{
		DeliveryID:       link.DeliveryID(),
		Status:           snapshot.Status,
		CourierName:      snapshot.CourierName,
		CourierPhone:     snapshot.CourierPhone,
		CourierPhotoURL:  snapshot.CourierPhotoURL,
		EstimatedArrival: snapshot.EstimatedArrival,
		RecipientName:    snapshot.RecipientName,
		ExpiresAt:        link.ExpiresAt(),
		Updates:          updateResponses,
	}, nil
}
