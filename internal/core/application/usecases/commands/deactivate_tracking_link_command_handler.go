package commands

import (
	"context"

	"courier-trust/internal/core/ports"
)

// DeactivateTrackingLinkCommandHandler revokes shared tracking links.
type DeactivateTrackingLinkCommandHandler struct {
	linkRepo ports.TrackingLinkRepository
}

// NewDeactivateTrackingLinkCommandHandler creates a handler for link revocation.
func NewDeactivateTrackingLinkCommandHandler(
	linkRepo ports.TrackingLinkRepository,
) DeactivateTrackingLinkCommandHandler {
	return DeactivateTrackingLinkCommandHandler{linkRepo: linkRepo}
}

// Handle turns the link off.
// Returns ObjectNotFoundError when no active link carries the code.
func (h DeactivateTrackingLinkCommandHandler) Handle(
	ctx context.Context,
	cmd DeactivateTrackingLinkCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.linkRepo.Deactivate(ctx, cmd.Code())
}
