package queries

import (
	"context"

	"courier-trust/internal/core/ports"
)

// GetDeliveryProofsQueryHandler lists stored proof artifacts for a delivery.
type GetDeliveryProofsQueryHandler struct {
	proofRepo ports.ProofRepository
}

// NewGetDeliveryProofsQueryHandler creates a handler for proof listings.
func NewGetDeliveryProofsQueryHandler(proofRepo ports.ProofRepository) GetDeliveryProofsQueryHandler {
	return GetDeliveryProofsQueryHandler{proofRepo: proofRepo}
}

// Handle returns the delivery's artifacts oldest first.
// An uninsured or unknown delivery simply yields an empty list.
func (h GetDeliveryProofsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryProofsQuery,
) ([]ProofArtifactResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	artifacts, err := h.proofRepo.GetArtifactsByDelivery(ctx, query.DeliveryID())
	if err != nil {
		return nil, err
	}

	responses := make([]ProofArtifactResponse, 0, len(artifacts))
	for _, artifact := range artifacts {
		responses = append(responses, ProofArtifactResponse{
			ID:         artifact.ID(),
			CourierID:  artifact.CourierID(),
			PhotoType:  artifact.PhotoType().String(),
			URL:        artifact.URL(),
			Verified:   artifact.Verified(),
			Confidence: artifact.Analysis().Confidence,
			CapturedAt: artifact.CapturedAt(),
		})
	}

	return responses, nil
}
