package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/guard"
)

var ErrRecordTrackingUpdateCommandIsNotConstructed = errors.New(
	"RecordTrackingUpdateCommand must be created via NewRecordTrackingUpdateCommand constructor",
)

// RecordTrackingUpdateCommand appends one courier position to a delivery's
// tracking feed. The note is optional free text such as "picked up".
type RecordTrackingUpdateCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	position   kernel.GeoPoint
	note       string

	guard guard.ConstructorGuard
}

// NewRecordTrackingUpdateCommand creates a command to record a position update.
func NewRecordTrackingUpdateCommand(
	deliveryID kernel.UUID,
	position kernel.GeoPoint,
	note string,
) (RecordTrackingUpdateCommand, error) {
	command := RecordTrackingUpdateCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setPosition(position),
	); err != nil {
		return RecordTrackingUpdateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordTrackingUpdateCommandIsNotConstructed if validation fails.
func (c RecordTrackingUpdateCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingUpdateCommandIsNotConstructed)
}

// DeliveryID returns the delivery being tracked.
func (c RecordTrackingUpdateCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Position returns the reported courier position.
func (c RecordTrackingUpdateCommand) Position() kernel.GeoPoint {
	return c.position
}

// Note returns the optional status note.
func (c RecordTrackingUpdateCommand) Note() string {
	return c.note
}

func (c *RecordTrackingUpdateCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *RecordTrackingUpdateCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
