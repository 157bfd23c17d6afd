package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

var ErrDeactivateTrackingLinkCommandIsNotConstructed = errors.New(
	"DeactivateTrackingLinkCommand must be created via NewDeactivateTrackingLinkCommand constructor",
)

// DeactivateTrackingLinkCommand revokes a shared tracking link by its code.
type DeactivateTrackingLinkCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewDeactivateTrackingLinkCommand creates a command to revoke a link.
func NewDeactivateTrackingLinkCommand(code string) (DeactivateTrackingLinkCommand, error) {
	command := DeactivateTrackingLinkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return DeactivateTrackingLinkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateTrackingLinkCommandIsNotConstructed if validation fails.
func (c DeactivateTrackingLinkCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateTrackingLinkCommandIsNotConstructed)
}

// Code returns the share code being revoked.
func (c DeactivateTrackingLinkCommand) Code() string {
	return c.code
}

func (c *DeactivateTrackingLinkCommand) setCode(code string) error {
	if len(code) != tracking.ShareCodeLength {
		return errs.NewValueIsInvalidError("code")
	}

	c.code = code
	return nil
}
