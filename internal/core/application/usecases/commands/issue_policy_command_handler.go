package commands

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/core/ports"
)

// IssuePolicyCommandHandler prices and persists insurance policies.
// Issuing is a single write with no retry; a storage failure surfaces as a
// PersistenceError carrying the store's own message.
type IssuePolicyCommandHandler struct {
	policyRepo ports.PolicyRepository
}

// NewIssuePolicyCommandHandler creates a handler for policy issuance.
func NewIssuePolicyCommandHandler(policyRepo ports.PolicyRepository) IssuePolicyCommandHandler {
	return IssuePolicyCommandHandler{policyRepo: policyRepo}
}

// Handle prices the declared value under the requested tier and stores the
// resulting active policy with a seven day coverage window.
func (h IssuePolicyCommandHandler) Handle(
	ctx context.Context,
	cmd IssuePolicyCommand,
) (*insurance.Policy, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	policy, err := insurance.NewPolicy(
		cmd.PolicyID(),
		cmd.DeliveryID(),
		cmd.DeclaredValue(),
		cmd.Tier(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.policyRepo.Add(ctx, policy); err != nil {
		return nil, err
	}

	return policy, nil
}
