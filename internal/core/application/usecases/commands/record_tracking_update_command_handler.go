package commands

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/core/ports"
)

// RecordTrackingUpdateCommandHandler appends position updates to the feed
// that resolved tracking links read from.
type RecordTrackingUpdateCommandHandler struct {
	updateRepo ports.TrackingUpdateRepository
}

// NewRecordTrackingUpdateCommandHandler creates a handler for position updates.
func NewRecordTrackingUpdateCommandHandler(
	updateRepo ports.TrackingUpdateRepository,
) RecordTrackingUpdateCommandHandler {
	return RecordTrackingUpdateCommandHandler{updateRepo: updateRepo}
}

// Handle records the position update.
func (h RecordTrackingUpdateCommandHandler) Handle(
	ctx context.Context,
	cmd RecordTrackingUpdateCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	update, err := tracking.NewUpdate(cmd.DeliveryID(), cmd.Position(), cmd.Note(), time.Now().UTC())
	if err != nil {
		return err
	}

	return h.updateRepo.Add(ctx, update)
}
