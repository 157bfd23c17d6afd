package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/guard"
)

var ErrCreateTrackingLinkCommandIsNotConstructed = errors.New(
	"CreateTrackingLinkCommand must be created via NewCreateTrackingLinkCommand constructor",
)

// CreateTrackingLinkCommand requests a shareable tracking link for a
// delivery. Unset options take the documented defaults: courier name, photo
// and ETA visible, phone hidden, 24 hour expiry.
type CreateTrackingLinkCommand struct { //nolint:recvcheck //using for validation
	linkID     kernel.UUID
	deliveryID kernel.UUID
	options    tracking.Options

	guard guard.ConstructorGuard
}

// NewCreateTrackingLinkCommand creates a command to share a delivery.
func NewCreateTrackingLinkCommand(
	deliveryID kernel.UUID,
	options tracking.Options,
) (CreateTrackingLinkCommand, error) {
	command := CreateTrackingLinkCommand{
		options: options,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLinkID(kernel.NewUUID()),
		command.setDeliveryID(deliveryID),
	); err != nil {
		return CreateTrackingLinkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTrackingLinkCommandIsNotConstructed if validation fails.
func (c CreateTrackingLinkCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackingLinkCommandIsNotConstructed)
}

// LinkID returns the generated link ID.
func (c CreateTrackingLinkCommand) LinkID() kernel.UUID {
	return c.linkID
}

// DeliveryID returns the delivery being shared.
func (c CreateTrackingLinkCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Options returns the requested visibility and expiry overrides.
func (c CreateTrackingLinkCommand) Options() tracking.Options {
	return c.options
}

func (c *CreateTrackingLinkCommand) setLinkID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.linkID = id
	return nil
}

func (c *CreateTrackingLinkCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}
