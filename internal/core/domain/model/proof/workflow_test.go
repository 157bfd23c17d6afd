package proof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
)

func newWorkflow(t *testing.T, requireRecipientPhoto, requireSignature bool) *proof.Workflow {
	t.Helper()
	w, err := proof.NewWorkflow(
		kernel.NewUUID(), kernel.NewUUID(), requireRecipientPhoto, requireSignature, nil)
	require.NoError(t, err)
	return w
}

func Test_NewWorkflow(t *testing.T) {
	t.Run("starts at the package step", func(t *testing.T) {
		// Given
		deliveryID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		// When
		w, err := proof.NewWorkflow(deliveryID, courierID, true, true, nil)

		// Then
		require.NoError(t, err)
		assert.NoError(t, w.Validate())
		assert.Equal(t, proof.StepPackage, w.Step())
		assert.Equal(t, deliveryID, w.DeliveryID())
		assert.Equal(t, courierID, w.CourierID())
		assert.True(t, w.RequiresRecipientPhoto())
		assert.True(t, w.RequiresSignature())
		assert.Nil(t, w.Location())
	})

	t.Run("keeps the optional location fix", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(55.75, 37.61)
		require.NoError(t, err)

		w, err := proof.NewWorkflow(kernel.NewUUID(), kernel.NewUUID(), false, false, &location)
		require.NoError(t, err)
		require.NotNil(t, w.Location())
		assert.Equal(t, location, *w.Location())
	})

	t.Run("returns error when delivery ID is empty", func(t *testing.T) {
		_, err := proof.NewWorkflow(kernel.UUID{}, kernel.NewUUID(), false, false, nil)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func Test_Workflow_CapturePhoto(t *testing.T) {
	t.Run("stores the photo", func(t *testing.T) {
		w := newWorkflow(t, true, true)

		err := w.CapturePhoto(proof.PhotoTypePackage, []byte("jpeg-bytes"))

		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), w.Photo(proof.PhotoTypePackage))
	})

	t.Run("retake replaces the previous capture", func(t *testing.T) {
		w := newWorkflow(t, true, true)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("first")))

		err := w.CapturePhoto(proof.PhotoTypePackage, []byte("second"))

		require.NoError(t, err)
		assert.Equal(t, []byte("second"), w.Photo(proof.PhotoTypePackage))
	})

	t.Run("returns error when photo is empty", func(t *testing.T) {
		w := newWorkflow(t, true, true)
		err := w.CapturePhoto(proof.PhotoTypePackage, nil)
		assert.ErrorIs(t, err, proof.ErrPhotoIsEmpty)
	})

	t.Run("rejects the signature type", func(t *testing.T) {
		w := newWorkflow(t, true, true)
		err := w.CapturePhoto(proof.PhotoTypeSignature, []byte("jpeg-bytes"))
		assert.Error(t, err)
	})
}

func Test_Workflow_Advance(t *testing.T) {
	t.Run("all steps enabled walks package, recipient, signature, review", func(t *testing.T) {
		// Given
		w := newWorkflow(t, true, true)

		// When + Then
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())
		assert.Equal(t, proof.StepRecipient, w.Step())

		require.NoError(t, w.CapturePhoto(proof.PhotoTypeRecipient, []byte("rcp")))
		require.NoError(t, w.Advance())
		assert.Equal(t, proof.StepSignature, w.Step())

		w.CaptureSignature([]byte("sig"), "Jordan Lee", "+15550100")
		require.NoError(t, w.Advance())
		assert.Equal(t, proof.StepReview, w.Step())
	})

	t.Run("recipient photo required without signature skips the signature step", func(t *testing.T) {
		w := newWorkflow(t, true, false)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())
		require.Equal(t, proof.StepRecipient, w.Step())

		require.NoError(t, w.CapturePhoto(proof.PhotoTypeRecipient, []byte("rcp")))
		require.NoError(t, w.Advance())

		assert.Equal(t, proof.StepReview, w.Step())
	})

	t.Run("neither optional step enabled jumps straight to review", func(t *testing.T) {
		w := newWorkflow(t, false, false)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))

		require.NoError(t, w.Advance())

		assert.Equal(t, proof.StepReview, w.Step())
	})

	t.Run("package step blocks without a package photo", func(t *testing.T) {
		w := newWorkflow(t, true, true)

		err := w.Advance()

		assert.ErrorIs(t, err, proof.ErrPackagePhotoMissing)
		assert.Equal(t, proof.StepPackage, w.Step())
	})

	t.Run("recipient step blocks without a recipient photo", func(t *testing.T) {
		w := newWorkflow(t, true, false)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())

		err := w.Advance()

		assert.ErrorIs(t, err, proof.ErrRecipientPhotoMissing)
		assert.Equal(t, proof.StepRecipient, w.Step())
	})

	t.Run("signature step blocks without signer name", func(t *testing.T) {
		w := newWorkflow(t, false, true)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())
		require.Equal(t, proof.StepSignature, w.Step())
		w.CaptureSignature([]byte("sig"), "", "")

		err := w.Advance()

		assert.ErrorIs(t, err, proof.ErrSignatureMissing)
		assert.Equal(t, proof.StepSignature, w.Step())
	})

	t.Run("cannot advance from review", func(t *testing.T) {
		w := newWorkflow(t, false, false)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())

		err := w.Advance()

		assert.Error(t, err)
		assert.Equal(t, proof.StepReview, w.Step())
	})
}

func Test_Workflow_Retreat(t *testing.T) {
	t.Run("review retreats to the last enabled capture step", func(t *testing.T) {
		tests := []struct {
			name                  string
			requireRecipientPhoto bool
			requireSignature      bool
			want                  proof.Step
		}{
			{"signature enabled", true, true, proof.StepSignature},
			{"only recipient enabled", true, false, proof.StepRecipient},
			{"nothing optional enabled", false, false, proof.StepPackage},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := newWorkflow(t, tt.requireRecipientPhoto, tt.requireSignature)
				require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
				require.NoError(t, w.Advance())
				if tt.requireRecipientPhoto {
					require.NoError(t, w.CapturePhoto(proof.PhotoTypeRecipient, []byte("rcp")))
					require.NoError(t, w.Advance())
				}
				if tt.requireSignature {
					w.CaptureSignature([]byte("sig"), "Jordan Lee", "")
					require.NoError(t, w.Advance())
				}
				require.Equal(t, proof.StepReview, w.Step())

				require.NoError(t, w.Retreat())

				assert.Equal(t, tt.want, w.Step())
			})
		}
	})

	t.Run("signature retreats over a disabled recipient step", func(t *testing.T) {
		w := newWorkflow(t, false, true)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())
		require.Equal(t, proof.StepSignature, w.Step())

		require.NoError(t, w.Retreat())

		assert.Equal(t, proof.StepPackage, w.Step())
	})

	t.Run("cannot retreat from the package step", func(t *testing.T) {
		w := newWorkflow(t, true, true)
		err := w.Retreat()
		assert.Error(t, err)
		assert.Equal(t, proof.StepPackage, w.Step())
	})
}

func Test_Workflow_Submission(t *testing.T) {
	reviewWorkflow := func(t *testing.T) *proof.Workflow {
		t.Helper()
		w := newWorkflow(t, false, false)
		require.NoError(t, w.CapturePhoto(proof.PhotoTypePackage, []byte("pkg")))
		require.NoError(t, w.Advance())
		require.Equal(t, proof.StepReview, w.Step())
		return w
	}

	t.Run("begin upload transitions review to uploading", func(t *testing.T) {
		w := reviewWorkflow(t)

		require.NoError(t, w.BeginUpload())

		assert.Equal(t, proof.StepUploading, w.Step())
	})

	t.Run("begin upload fails outside review", func(t *testing.T) {
		w := newWorkflow(t, false, false)
		err := w.BeginUpload()
		assert.Error(t, err)
		assert.Equal(t, proof.StepPackage, w.Step())
	})

	t.Run("failed submission returns to review", func(t *testing.T) {
		w := reviewWorkflow(t)
		require.NoError(t, w.BeginUpload())

		w.ReturnToReview()

		assert.Equal(t, proof.StepReview, w.Step())
	})

	t.Run("complete transitions uploading to done", func(t *testing.T) {
		w := reviewWorkflow(t)
		require.NoError(t, w.BeginUpload())

		require.NoError(t, w.Complete())

		assert.Equal(t, proof.StepDone, w.Step())
	})

	t.Run("complete fails outside uploading", func(t *testing.T) {
		w := reviewWorkflow(t)
		err := w.Complete()
		assert.Error(t, err)
		assert.Equal(t, proof.StepReview, w.Step())
	})
}

func Test_Workflow_HasSignature(t *testing.T) {
	w := newWorkflow(t, false, true)
	assert.False(t, w.HasSignature())

	w.CaptureSignature([]byte("sig"), "", "")
	assert.False(t, w.HasSignature())

	w.CaptureSignature([]byte("sig"), "Jordan Lee", "+15550100")
	assert.True(t, w.HasSignature())
	assert.Equal(t, "Jordan Lee", w.SignerName())
	assert.Equal(t, "+15550100", w.SignerPhone())
	assert.Equal(t, []byte("sig"), w.SignatureImage())
}
