package queries

import (
	"errors"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/guard"
)

var ErrGetDeliveryProofsQueryIsNotConstructed = errors.New(
	"GetDeliveryProofsQuery must be created via NewGetDeliveryProofsQuery constructor",
)

// GetDeliveryProofsQuery lists the proof artifacts stored for a delivery.
type GetDeliveryProofsQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryProofsQuery creates a query for one delivery's proofs.
func NewGetDeliveryProofsQuery(deliveryID kernel.UUID) (GetDeliveryProofsQuery, error) {
	query := GetDeliveryProofsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryProofsQuery{}, err
	}
	query.deliveryID = deliveryID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryProofsQueryIsNotConstructed if validation fails.
func (q GetDeliveryProofsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProofsQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose proofs are requested.
func (q GetDeliveryProofsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// ProofArtifactResponse is one stored proof artifact in the read model.
type ProofArtifactResponse struct {
	ID         kernel.UUID
	CourierID  kernel.UUID
	PhotoType  string
	URL        string
	Verified   bool
	Confidence float64
	CapturedAt time.Time
}
