package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
)

// ProofRepository persists delivery proof artifacts and signature records.
// Artifacts are immutable once stored.
type ProofRepository interface {
	// AddArtifact stores one uploaded proof photo with its analysis verdict.
	AddArtifact(ctx context.Context, artifact *proof.Artifact) error

	// GetArtifactsByDelivery lists all artifacts stored for a delivery,
	// oldest first. An empty list is not an error.
	GetArtifactsByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*proof.Artifact, error)

	// AddSignature stores the signer details accompanying a signature artifact.
	AddSignature(ctx context.Context, record proof.SignatureRecord) error
}
