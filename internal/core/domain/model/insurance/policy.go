package insurance

import (
	"errors"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/guard"
)

// policyTermDays is the fixed coverage window from activation.
const policyTermDays = 7

// ErrPolicyIsNotConstructed is returned when using an improperly initialized Policy.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy or RestorePolicy")

// Policy is the aggregate root for issued package insurance. A policy is
// created once per delivery, priced at issuance, activated immediately, and
// expires after a fixed 7-day window. It is never mutated after creation;
// deactivation is handled by an external adjudication process.
type Policy struct {
	id            kernel.UUID
	deliveryID    kernel.UUID
	tier          PlanTier
	declaredValue int64
	premium       int64
	coverage      int64
	isActive      bool
	activatedAt   time.Time
	expiresAt     time.Time

	guard guard.ConstructorGuard
}

// NewPolicy issues a policy for a delivery. The premium and coverage are
// computed from the plan catalog at the moment of issuance, activation is
// immediate, and expiry is activation plus seven days.
func NewPolicy(
	id kernel.UUID,
	deliveryID kernel.UUID,
	declaredValue int64,
	tier PlanTier,
	now time.Time,
) (*Policy, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}

	quote, err := Price(declaredValue, tier)
	if err != nil {
		return nil, err
	}

	return &Policy{
		id:            id,
		deliveryID:    deliveryID,
		tier:          tier,
		declaredValue: declaredValue,
		premium:       quote.Premium,
		coverage:      quote.Coverage,
		isActive:      true,
		activatedAt:   now,
		expiresAt:     now.AddDate(0, 0, policyTermDays),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePolicy reconstructs a policy from persistence without re-pricing.
func RestorePolicy(
	id kernel.UUID,
	deliveryID kernel.UUID,
	tier PlanTier,
	declaredValue, premium, coverage int64,
	isActive bool,
	activatedAt, expiresAt time.Time,
) (*Policy, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate(), tier.Validate()); err != nil {
		return nil, err
	}

	return &Policy{
		id:            id,
		deliveryID:    deliveryID,
		tier:          tier,
		declaredValue: declaredValue,
		premium:       premium,
		coverage:      coverage,
		isActive:      isActive,
		activatedAt:   activatedAt,
		expiresAt:     expiresAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the aggregate was created through one of its constructors.
func (p *Policy) Validate() error {
	if p == nil {
		return ErrPolicyIsNotConstructed
	}
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// ID returns the policy identifier.
func (p *Policy) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the insured delivery's identifier.
func (p *Policy) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Tier returns the plan tier the policy was priced under.
func (p *Policy) Tier() PlanTier {
	return p.tier
}

// DeclaredValue returns the declared package value in minor currency units.
func (p *Policy) DeclaredValue() int64 {
	return p.declaredValue
}

// Premium returns the computed premium.
func (p *Policy) Premium() int64 {
	return p.premium
}

// Coverage returns the computed coverage amount.
func (p *Policy) Coverage() int64 {
	return p.coverage
}

// IsActive reports whether the policy is active.
func (p *Policy) IsActive() bool {
	return p.isActive
}

// ActivatedAt returns the activation timestamp.
func (p *Policy) ActivatedAt() time.Time {
	return p.activatedAt
}

// ExpiresAt returns the end of the coverage window.
func (p *Policy) ExpiresAt() time.Time {
	return p.expiresAt
}
