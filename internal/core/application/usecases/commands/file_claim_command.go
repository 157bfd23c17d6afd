package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

var ErrFileClaimCommandIsNotConstructed = errors.New(
	"FileClaimCommand must be created via NewFileClaimCommand constructor",
)

// FileClaimCommand requests filing an insurance claim against a policy.
// Whether the policy is still active is deliberately not checked here;
// adjusters judge eligibility during review.
type FileClaimCommand struct { //nolint:recvcheck //using for validation
	claimID       kernel.UUID
	policyID      kernel.UUID
	deliveryID    kernel.UUID
	filerID       kernel.UUID
	claimType     insurance.ClaimType
	description   string
	evidenceURLs  []string
	claimedAmount int64

	guard guard.ConstructorGuard
}

// NewFileClaimCommand creates a command to file a claim.
func NewFileClaimCommand(
	policyID kernel.UUID,
	deliveryID kernel.UUID,
	filerID kernel.UUID,
	claimType insurance.ClaimType,
	description string,
	evidenceURLs []string,
	claimedAmount int64,
) (FileClaimCommand, error) {
	command := FileClaimCommand{
		evidenceURLs: evidenceURLs,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setClaimID(kernel.NewUUID()),
		command.setPolicyID(policyID),
		command.setDeliveryID(deliveryID),
		command.setFilerID(filerID),
		command.setClaimType(claimType),
		command.setDescription(description),
		command.setClaimedAmount(claimedAmount),
	); err != nil {
		return FileClaimCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFileClaimCommandIsNotConstructed if validation fails.
func (c FileClaimCommand) Validate() error {
	return c.guard.Validate(ErrFileClaimCommandIsNotConstructed)
}

// ClaimID returns the generated claim ID.
func (c FileClaimCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// PolicyID returns the policy the claim is filed against.
func (c FileClaimCommand) PolicyID() kernel.UUID {
	return c.policyID
}

// DeliveryID returns the delivery the claim concerns.
func (c FileClaimCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// FilerID returns who filed the claim.
func (c FileClaimCommand) FilerID() kernel.UUID {
	return c.filerID
}

// ClaimType returns the kind of loss being claimed.
func (c FileClaimCommand) ClaimType() insurance.ClaimType {
	return c.claimType
}

// Description returns the free-text account of what happened.
func (c FileClaimCommand) Description() string {
	return c.description
}

// EvidenceURLs returns links to supporting evidence, possibly empty.
func (c FileClaimCommand) EvidenceURLs() []string {
	return c.evidenceURLs
}

// ClaimedAmount returns the requested payout in minor currency units.
func (c FileClaimCommand) ClaimedAmount() int64 {
	return c.claimedAmount
}

func (c *FileClaimCommand) setClaimID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.claimID = id
	return nil
}

func (c *FileClaimCommand) setPolicyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.policyID = id
	return nil
}

func (c *FileClaimCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *FileClaimCommand) setFilerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.filerID = id
	return nil
}

func (c *FileClaimCommand) setClaimType(claimType insurance.ClaimType) error {
	if err := claimType.Validate(); err != nil {
		return err
	}

	c.claimType = claimType
	return nil
}

func (c *FileClaimCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *FileClaimCommand) setClaimedAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("claimedAmount")
	}

	c.claimedAmount = amount
	return nil
}
