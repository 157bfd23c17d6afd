package commands

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/core/ports"
)

// CreateTrackingLinkCommandHandler creates and persists shareable tracking
// links. Codes are drawn from a 32-symbol alphabet; at six characters the
// space is large enough that collisions are left to the unique index.
type CreateTrackingLinkCommandHandler struct {
	linkRepo   ports.TrackingLinkRepository
	baseOrigin string
}

// NewCreateTrackingLinkCommandHandler creates a handler for link creation.
// baseOrigin is the public origin share URLs are built on, e.g.
// "https://track.example.com".
func NewCreateTrackingLinkCommandHandler(
	linkRepo ports.TrackingLinkRepository,
	baseOrigin string,
) CreateTrackingLinkCommandHandler {
	return CreateTrackingLinkCommandHandler{
		linkRepo:   linkRepo,
		baseOrigin: baseOrigin,
	}
}

// Handle creates the link with a fresh share code and stores it with a zero
// view count.
func (h CreateTrackingLinkCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTrackingLinkCommand,
) (*tracking.Link, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	link, err := tracking.NewLink(
		cmd.LinkID(),
		cmd.DeliveryID(),
		h.baseOrigin,
		cmd.Options(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.linkRepo.Add(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}
