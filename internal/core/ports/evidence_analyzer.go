package ports

import (
	"context"

	"courier-trust/internal/core/domain/model/proof"
)

// EvidenceAnalyzer runs image analysis over an uploaded proof photo.
type EvidenceAnalyzer interface {
	// Analyze inspects the photo at the given URL and reports what it
	// detected together with a confidence in [0, 1].
	Analyze(ctx context.Context, photoURL string, photoType proof.PhotoType) (proof.Analysis, error)
}
