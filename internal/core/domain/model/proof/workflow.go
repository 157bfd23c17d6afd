package proof

import (
	"errors"
	"fmt"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

// Domain errors for workflow transitions. All of them leave the workflow
// state untouched when returned.
var (
	// ErrWorkflowIsNotConstructed is returned when using an improperly initialized Workflow.
	ErrWorkflowIsNotConstructed = errors.New("Workflow must be created via NewWorkflow constructor")
	// ErrPhotoIsEmpty is returned when capturing an empty photo file.
	ErrPhotoIsEmpty = errs.NewValueIsRequiredError("photo data")
	// ErrPackagePhotoMissing blocks advancing past the package step without a captured photo.
	ErrPackagePhotoMissing = errs.NewValueIsRequiredError("package photo")
	// ErrRecipientPhotoMissing blocks advancing past the recipient step without a captured photo.
	ErrRecipientPhotoMissing = errs.NewValueIsRequiredError("recipient photo")
	// ErrSignatureMissing blocks advancing past the signature step without both image and signer name.
	ErrSignatureMissing = errs.NewValueIsRequiredError("signature image and signer name")
)

// Workflow is the capture workflow aggregate: an explicit value holding the
// current step, the evidence captured so far, and the opportunistic GPS fix.
// The presentation layer feeds captures into it and drives transitions; no
// artifact leaves the process until submission begins from review.
//
// The two requirements are fixed at workflow start and never change.
// Retaking a photo before submission replaces the previous in-memory file;
// artifacts already persisted by an earlier partial submission are never
// deleted.
type Workflow struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	requireRecipientPhoto bool
	requireSignature      bool

	step           Step
	photos         map[PhotoType][]byte
	signatureImage []byte
	signerName     string
	signerPhone    string
	location       *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewWorkflow starts a capture workflow for a delivery at the package step.
// The location fix is optional; its absence never blocks any transition.
func NewWorkflow(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	requireRecipientPhoto bool,
	requireSignature bool,
	location *kernel.GeoPoint,
) (*Workflow, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Workflow{
		deliveryID:            deliveryID,
		courierID:             courierID,
		requireRecipientPhoto: requireRecipientPhoto,
		requireSignature:      requireSignature,
		step:                  StepPackage,
		photos:                make(map[PhotoType][]byte),
		location:              location,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the workflow was created through NewWorkflow.
func (w *Workflow) Validate() error {
	if w == nil {
		return ErrWorkflowIsNotConstructed
	}
	return w.guard.Validate(ErrWorkflowIsNotConstructed)
}

// CapturePhoto stores a photo file for the given type, replacing any earlier
// capture of the same type. Only presence is validated; format and size are
// the capture widget's concern.
func (w *Workflow) CapturePhoto(photoType PhotoType, data []byte) error {
	if err := photoType.Validate(); err != nil {
		return err
	}
	if photoType == PhotoTypeSignature {
		return errs.NewValueIsInvalidErrorWithCause(
			"photoType", errors.New("signatures are captured via CaptureSignature"))
	}
	if len(data) == 0 {
		return ErrPhotoIsEmpty
	}

	w.photos[photoType] = data
	return nil
}

// CaptureSignature stores the signature image and signer details, replacing
// any earlier capture. Completeness is checked when advancing past the
// signature step, not here.
func (w *Workflow) CaptureSignature(image []byte, signerName, signerPhone string) {
	w.signatureImage = image
	w.signerName = signerName
	w.signerPhone = signerPhone
}

// Advance moves the workflow one enabled step forward.
//
// Preconditions per step:
//   - package: a package photo has been captured
//   - recipient: a recipient photo has been captured
//   - signature: both a signature image and a non-empty signer name exist
//
// A failed precondition leaves the step unchanged and returns the
// corresponding validation error. Advancing from review, uploading or done
// is invalid; submission owns those transitions.
func (w *Workflow) Advance() error {
	switch w.step {
	case StepPackage:
		if len(w.photos[PhotoTypePackage]) == 0 {
			return ErrPackagePhotoMissing
		}
		w.step = w.firstStepAfterPackage()
		return nil

	case StepRecipient:
		if len(w.photos[PhotoTypeRecipient]) == 0 {
			return ErrRecipientPhotoMissing
		}
		if w.requireSignature {
			w.step = StepSignature
		} else {
			w.step = StepReview
		}
		return nil

	case StepSignature:
		if len(w.signatureImage) == 0 || w.signerName == "" {
			return ErrSignatureMissing
		}
		w.step = StepReview
		return nil

	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("cannot advance from %s", w.step))
	}
}

// Retreat moves the workflow one enabled step backward, mirroring Advance
// and skipping disabled steps. Retreating from package, uploading or done
// is invalid.
func (w *Workflow) Retreat() error {
	switch w.step {
	case StepRecipient:
		w.step = StepPackage
		return nil

	case StepSignature:
		if w.requireRecipientPhoto {
			w.step = StepRecipient
		} else {
			w.step = StepPackage
		}
		return nil

	case StepReview:
		w.step = w.lastEnabledCaptureStep()
		return nil

	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("cannot retreat from %s", w.step))
	}
}

// BeginUpload transitions review -> uploading. Submission may only start
// from review.
func (w *Workflow) BeginUpload() error {
	if w.step != StepReview {
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("submission must start from review, not %s", w.step))
	}
	w.step = StepUploading
	return nil
}

// ReturnToReview puts a failed submission back on the review step so the
// operator can retry. Prior uploads stay persisted.
func (w *Workflow) ReturnToReview() {
	if w.step == StepUploading {
		w.step = StepReview
	}
}

// Complete transitions uploading -> done after every upload step succeeded.
func (w *Workflow) Complete() error {
	if w.step != StepUploading {
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("cannot complete from %s", w.step))
	}
	w.step = StepDone
	return nil
}

// HasSignature reports whether both the signature image and signer name were captured.
func (w *Workflow) HasSignature() bool {
	return len(w.signatureImage) > 0 && w.signerName != ""
}

// Step returns the current workflow step.
func (w *Workflow) Step() Step {
	return w.step
}

// DeliveryID returns the delivery the workflow collects evidence for.
func (w *Workflow) DeliveryID() kernel.UUID {
	return w.deliveryID
}

// CourierID returns the courier performing the delivery.
func (w *Workflow) CourierID() kernel.UUID {
	return w.courierID
}

// RequiresRecipientPhoto reports whether the recipient step is enabled.
func (w *Workflow) RequiresRecipientPhoto() bool {
	return w.requireRecipientPhoto
}

// RequiresSignature reports whether the signature step is enabled.
func (w *Workflow) RequiresSignature() bool {
	return w.requireSignature
}

// Photo returns the captured file for the given type, nil when absent.
func (w *Workflow) Photo(photoType PhotoType) []byte {
	return w.photos[photoType]
}

// SignatureImage returns the captured signature image, nil when absent.
func (w *Workflow) SignatureImage() []byte {
	return w.signatureImage
}

// SignerName returns the captured signer name.
func (w *Workflow) SignerName() string {
	return w.signerName
}

// SignerPhone returns the captured signer phone, empty when not provided.
func (w *Workflow) SignerPhone() string {
	return w.signerPhone
}

// Location returns the GPS fix captured at workflow start, nil when
// geolocation was unavailable.
func (w *Workflow) Location() *kernel.GeoPoint {
	return w.location
}

func (w *Workflow) firstStepAfterPackage() Step {
	if w.requireRecipientPhoto {
		return StepRecipient
	}
	if w.requireSignature {
		return StepSignature
	}
	return StepReview
}

func (w *Workflow) lastEnabledCaptureStep() Step {
	if w.requireSignature {
		return StepSignature
	}
	if w.requireRecipientPhoto {
		return StepRecipient
	}
	return StepPackage
}
