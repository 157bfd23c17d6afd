package proof_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
)

func Test_NewArtifact(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("derives verified from the confidence threshold", func(t *testing.T) {
		tests := []struct {
			name       string
			confidence float64
			verified   bool
		}{
			{"above threshold", 0.92, true},
			{"exactly at threshold", 0.70, true},
			{"below threshold", 0.69, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given
				deliveryID := kernel.NewUUID()
				courierID := kernel.NewUUID()
				analysis := proof.Analysis{HasPackage: true, Confidence: tt.confidence}

				// When
				artifact, err := proof.NewArtifact(
					kernel.NewUUID(), deliveryID, courierID, proof.PhotoTypePackage,
					"https://cdn.example.com/proofs/abc/package_1.jpg", analysis, nil, now)

				// Then
				require.NoError(t, err)
				assert.NoError(t, artifact.Validate())
				assert.Equal(t, tt.verified, artifact.Verified())
				assert.Equal(t, deliveryID, artifact.DeliveryID())
				assert.Equal(t, courierID, artifact.CourierID())
				assert.Equal(t, analysis, artifact.Analysis())
				assert.Equal(t, now, artifact.CapturedAt())
			})
		}
	})

	t.Run("returns error when URL is empty", func(t *testing.T) {
		_, err := proof.NewArtifact(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), proof.PhotoTypePackage,
			"", proof.Analysis{}, nil, now)
		assert.Error(t, err)
	})

	t.Run("returns error when courier ID is missing", func(t *testing.T) {
		_, err := proof.NewArtifact(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, proof.PhotoTypePackage,
			"https://cdn.example.com/p.jpg", proof.Analysis{}, nil, now)
		assert.Error(t, err)
	})

	t.Run("returns error for invalid photo type", func(t *testing.T) {
		_, err := proof.NewArtifact(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), proof.PhotoTypeUnknown,
			"https://cdn.example.com/p.jpg", proof.Analysis{}, nil, now)
		assert.Error(t, err)
	})
}

func Test_RestoreArtifact(t *testing.T) {
	t.Run("keeps the stored verified flag as is", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

		// Stored verdict wins even when the confidence would now say otherwise.
		artifact := proof.RestoreArtifact(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), proof.PhotoTypeRecipient,
			"https://cdn.example.com/p.jpg",
			proof.Analysis{HasPerson: true, Confidence: 0.40}, true, nil, now)

		assert.NoError(t, artifact.Validate())
		assert.True(t, artifact.Verified())
	})
}

func Test_PartialSubmissionError(t *testing.T) {
	cause := errors.New("connection reset")
	err := proof.NewPartialSubmissionError("recipient", cause)

	assert.ErrorIs(t, err, proof.ErrPartialSubmission)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "recipient")
}
