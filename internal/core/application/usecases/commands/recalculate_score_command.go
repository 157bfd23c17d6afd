// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, domain logic, persistence.
package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/guard"
)

var ErrRecalculateScoreCommandIsNotConstructed = errors.New(
	"RecalculateScoreCommand must be created via NewRecalculateScoreCommand constructor",
)

// RecalculateScoreCommand requests a fresh reliability score computation for
// one courier from their complete delivery history.
//
// Example:
//
//	cmd, err := NewRecalculateScoreCommand(courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid recalculation request: %w", err)
//	}
//
//	handler := NewRecalculateScoreCommandHandler(courierRepo, scoreRepo)
//	score, err := handler.Handle(ctx, cmd)
type RecalculateScoreCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecalculateScoreCommand creates a command to recompute a courier's score.
func NewRecalculateScoreCommand(courierID kernel.UUID) (RecalculateScoreCommand, error) {
	command := RecalculateScoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return RecalculateScoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecalculateScoreCommandIsNotConstructed if validation fails.
func (c RecalculateScoreCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateScoreCommandIsNotConstructed)
}

// CourierID returns the courier whose score is recomputed.
func (c RecalculateScoreCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RecalculateScoreCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
