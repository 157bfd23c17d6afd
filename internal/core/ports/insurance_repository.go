package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/insurance"
)

// PolicyRepository persists issued insurance policies.
type PolicyRepository interface {
	// Add stores a newly issued policy.
	// Storage failures come back as PersistenceError with the store's
	// message intact; issuing is never retried.
	Add(ctx context.Context, policy *insurance.Policy) error
}

// ClaimRepository persists filed insurance claims.
type ClaimRepository interface {
	// Add stores a new claim in pending status.
	Add(ctx context.Context, claim *insurance.Claim) error
}
