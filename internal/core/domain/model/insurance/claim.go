package insurance

import (
	"errors"
	"fmt"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

// ClaimType classifies what happened to the insured package.
type ClaimType int

const (
	// ClaimTypeUnknown represents an invalid or undefined claim type.
	ClaimTypeUnknown ClaimType = iota

	// ClaimTypeDamage covers packages delivered in damaged condition.
	ClaimTypeDamage

	// ClaimTypeLoss covers packages lost in transit.
	ClaimTypeLoss

	// ClaimTypeTheft covers stolen packages.
	ClaimTypeTheft

	// ClaimTypeDelay covers deliveries that missed their window.
	ClaimTypeDelay
)

// ClaimStatusPending is the status every claim starts in. Terminal states
// (approved, denied, paid out) belong to the external adjudication process
// and are not modeled here.
const ClaimStatusPending = "pending"

// ErrClaimIsNotConstructed is returned when using an improperly initialized Claim.
var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim or RestoreClaim")

// getClaimTypeStrings returns a map of ClaimType values to their string representations.
func getClaimTypeStrings() map[ClaimType]string {
	return map[ClaimType]string{
		ClaimTypeUnknown: "unknown",
		ClaimTypeDamage:  "damage",
		ClaimTypeLoss:    "loss",
		ClaimTypeTheft:   "theft",
		ClaimTypeDelay:   "delay",
	}
}

// getValidClaimTypeStrings returns a map of only valid ClaimType values.
func getValidClaimTypeStrings() map[ClaimType]string {
	//nolint:exhaustive // ClaimTypeUnknown is intentionally excluded as it's invalid
	return map[ClaimType]string{
		ClaimTypeDamage: "damage",
		ClaimTypeLoss:   "loss",
		ClaimTypeTheft:  "theft",
		ClaimTypeDelay:  "delay",
	}
}

// ClaimTypeFromString parses a persisted claim type name back into a ClaimType value.
func ClaimTypeFromString(s string) (ClaimType, error) {
	for claimType, name := range getValidClaimTypeStrings() {
		if name == s {
			return claimType, nil
		}
	}
	return ClaimTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"claimType", fmt.Errorf("%q is not a valid claim type", s))
}

// Validate checks if the ClaimType value is valid.
func (t ClaimType) Validate() error {
	if _, ok := getValidClaimTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"claimType", fmt.Errorf("%d is not a valid claim type", t))
	}
	return nil
}

// String returns the lowercase claim type name used for persistence and display.
func (t ClaimType) String() string {
	if str, ok := getClaimTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Claim records a filed insurance claim against a policy. Claims start in
// pending status and stay there as far as this subsystem is concerned.
// Filing deliberately performs no check that the policy is active or
// unexpired; that belongs to the external adjudication process.
type Claim struct {
	id            kernel.UUID
	policyID      kernel.UUID
	deliveryID    kernel.UUID
	filerID       kernel.UUID
	claimType     ClaimType
	description   string
	evidenceURLs  []string
	claimedAmount int64
	status        string
	filedAt       time.Time

	guard guard.ConstructorGuard
}

// NewClaim files a claim. The description is mandatory and the claimed
// amount must be positive; evidence URLs are optional opaque references.
func NewClaim(
	id kernel.UUID,
	policyID kernel.UUID,
	deliveryID kernel.UUID,
	filerID kernel.UUID,
	claimType ClaimType,
	description string,
	evidenceURLs []string,
	claimedAmount int64,
	now time.Time,
) (*Claim, error) {
	if err := errors.Join(
		id.Validate(),
		policyID.Validate(),
		deliveryID.Validate(),
		filerID.Validate(),
		claimType.Validate(),
	); err != nil {
		return nil, err
	}

	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if claimedAmount <= 0 {
		return nil, errs.NewValueIsInvalidError("claimedAmount")
	}

	return &Claim{
		id:            id,
		policyID:      policyID,
		deliveryID:    deliveryID,
		filerID:       filerID,
		claimType:     claimType,
		description:   description,
		evidenceURLs:  evidenceURLs,
		claimedAmount: claimedAmount,
		status:        ClaimStatusPending,
		filedAt:       now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreClaim reconstructs a claim from persistence.
func RestoreClaim(
	id kernel.UUID,
	policyID kernel.UUID,
	deliveryID kernel.UUID,
	filerID kernel.UUID,
	claimType ClaimType,
	description string,
	evidenceURLs []string,
	claimedAmount int64,
	status string,
	filedAt time.Time,
) (*Claim, error) {
	if err := errors.Join(
		id.Validate(),
		policyID.Validate(),
		deliveryID.Validate(),
		filerID.Validate(),
		claimType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Claim{
		id:            id,
		policyID:      policyID,
		deliveryID:    deliveryID,
		filerID:       filerID,
		claimType:     claimType,
		description:   description,
		evidenceURLs:  evidenceURLs,
		claimedAmount: claimedAmount,
		status:        status,
		filedAt:       filedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the claim was created through one of its constructors.
func (c *Claim) Validate() error {
	if c == nil {
		return ErrClaimIsNotConstructed
	}
	return c.guard.Validate(ErrClaimIsNotConstructed)
}

// ID returns the claim identifier.
func (c *Claim) ID() kernel.UUID {
	return c.id
}

// PolicyID returns the claimed policy's identifier.
func (c *Claim) PolicyID() kernel.UUID {
	return c.policyID
}

// DeliveryID returns the affected delivery's identifier.
func (c *Claim) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// FilerID returns the identifier of whoever filed the claim.
func (c *Claim) FilerID() kernel.UUID {
	return c.filerID
}

// Type returns the claim classification.
func (c *Claim) Type() ClaimType {
	return c.claimType
}

// Description returns the free-text description of what happened.
func (c *Claim) Description() string {
	return c.description
}

// EvidenceURLs returns the opaque evidence references attached at filing.
func (c *Claim) EvidenceURLs() []string {
	return c.evidenceURLs
}

// ClaimedAmount returns the claimed amount in minor currency units.
func (c *Claim) ClaimedAmount() int64 {
	return c.claimedAmount
}

// Status returns the claim status.
func (c *Claim) Status() string {
	return c.status
}

// FiledAt returns when the claim was filed.
func (c *Claim) FiledAt() time.Time {
	return c.filedAt
}
