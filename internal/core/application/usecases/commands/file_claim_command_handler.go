package commands

import (
	"context"
	"time"

	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/core/ports"
)

// FileClaimCommandHandler persists new insurance claims in pending status.
type FileClaimCommandHandler struct {
	claimRepo ports.ClaimRepository
}

// NewFileClaimCommandHandler creates a handler for claim filing.
func NewFileClaimCommandHandler(claimRepo ports.ClaimRepository) FileClaimCommandHandler {
	return FileClaimCommandHandler{claimRepo: claimRepo}
}

// Handle stores the claim and returns it with its generated ID.
func (h FileClaimCommandHandler) Handle(
	ctx context.Context,
	cmd FileClaimCommand,
) (*insurance.Claim, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	claim, err := insurance.NewClaim(
		cmd.ClaimID(),
		cmd.PolicyID(),
		cmd.DeliveryID(),
		cmd.FilerID(),
		cmd.ClaimType(),
		cmd.Description(),
		cmd.EvidenceURLs(),
		cmd.ClaimedAmount(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.claimRepo.Add(ctx, claim); err != nil {
		return nil, err
	}

	return claim, nil
}
