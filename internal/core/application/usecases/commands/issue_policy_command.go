package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

var ErrIssuePolicyCommandIsNotConstructed = errors.New(
	"IssuePolicyCommand must be created via NewIssuePolicyCommand constructor",
)

// IssuePolicyCommand requests an insurance policy for one delivery at the
// given plan tier. The policy ID is generated up front so callers can refer
// to the policy before and after persistence.
type IssuePolicyCommand struct { //nolint:recvcheck //using for validation
	policyID      kernel.UUID
	deliveryID    kernel.UUID
	declaredValue int64
	tier          insurance.PlanTier

	guard guard.ConstructorGuard
}

// NewIssuePolicyCommand creates a command to insure a delivery.
// Validates the delivery ID, a positive declared value and a catalog tier.
func NewIssuePolicyCommand(
	deliveryID kernel.UUID,
	declaredValue int64,
	tier insurance.PlanTier,
) (IssuePolicyCommand, error) {
	command := IssuePolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPolicyID(kernel.NewUUID()),
		command.setDeliveryID(deliveryID),
		command.setDeclaredValue(declaredValue),
		command.setTier(tier),
	); err != nil {
		return IssuePolicyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssuePolicyCommandIsNotConstructed if validation fails.
func (c IssuePolicyCommand) Validate() error {
	return c.guard.Validate(ErrIssuePolicyCommandIsNotConstructed)
}

// PolicyID returns the generated policy ID.
func (c IssuePolicyCommand) PolicyID() kernel.UUID {
	return c.policyID
}

// DeliveryID returns the delivery being insured.
func (c IssuePolicyCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DeclaredValue returns the declared package value in minor currency units.
func (c IssuePolicyCommand) DeclaredValue() int64 {
	return c.declaredValue
}

// Tier returns the requested plan tier.
func (c IssuePolicyCommand) Tier() insurance.PlanTier {
	return c.tier
}

func (c *IssuePolicyCommand) setPolicyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.policyID = id
	return nil
}

func (c *IssuePolicyCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *IssuePolicyCommand) setDeclaredValue(value int64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidError("declaredValue")
	}

	c.declaredValue = value
	return nil
}

func (c *IssuePolicyCommand) setTier(tier insurance.PlanTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	c.tier = tier
	return nil
}
