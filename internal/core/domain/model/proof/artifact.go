package proof

import (
	"errors"
	"fmt"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/pkg/errs"
	"courier-trust/internal/pkg/guard"
)

// VerifiedConfidenceThreshold is the minimum analyzer confidence for an
// artifact to count as automatically verified.
const VerifiedConfidenceThreshold = 0.70

// ErrArtifactIsNotConstructed is returned when using an improperly initialized Artifact.
var ErrArtifactIsNotConstructed = errors.New("Artifact must be created via NewArtifact constructor")

// ErrPartialSubmission marks a submission that persisted some artifacts
// before a step failed. errors.Is against it matches any PartialSubmissionError.
var ErrPartialSubmission = errors.New("proof submission incomplete")

// PartialSubmissionError reports which upload step failed after earlier
// steps had already been persisted. Retrying the submission skips the
// artifact types that made it through.
type PartialSubmissionError struct {
	FailedStep string
	Cause      error
}

func NewPartialSubmissionError(failedStep string, cause error) *PartialSubmissionError {
	return &PartialSubmissionError{FailedStep: failedStep, Cause: cause}
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("proof submission incomplete: %s failed (cause: %v)", e.FailedStep, e.Cause)
}

func (e *PartialSubmissionError) Unwrap() error {
	return e.Cause
}

func (e *PartialSubmissionError) Is(target error) bool {
	return target == ErrPartialSubmission
}

// Analysis is the outcome of running image analysis over an uploaded photo.
type Analysis struct {
	HasPackage bool
	HasPerson  bool
	Confidence float64
}

// Artifact is a persisted proof photo together with its analysis verdict.
// Verified is derived once at creation from the confidence threshold and is
// immutable afterwards; reviewers read it, they do not flip it.
type Artifact struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	courierID  kernel.UUID
	photoType  PhotoType
	url        string
	analysis   Analysis
	verified   bool
	location   *kernel.GeoPoint
	capturedAt time.Time

	guard guard.ConstructorGuard
}

// NewArtifact records an uploaded photo. The verified flag is derived from
// the analysis confidence against VerifiedConfidenceThreshold. A nil
// location means the capture device had no GPS fix.
func NewArtifact(
	id kernel.UUID,
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	photoType PhotoType,
	url string,
	analysis Analysis,
	location *kernel.GeoPoint,
	now time.Time,
) (*Artifact, error) {
	err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		courierID.Validate(),
		photoType.Validate(),
	)
	if url == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("url"))
	}
	if err != nil {
		return nil, err
	}

	return &Artifact{
		id:         id,
		deliveryID: deliveryID,
		courierID:  courierID,
		photoType:  photoType,
		url:        url,
		analysis:   analysis,
		verified:   analysis.Confidence >= VerifiedConfidenceThreshold,
		location:   location,
		capturedAt: now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreArtifact recreates an Artifact from storage without re-deriving
// the verified flag.
func RestoreArtifact(
	id kernel.UUID,
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	photoType PhotoType,
	url string,
	analysis Analysis,
	verified bool,
	location *kernel.GeoPoint,
	capturedAt time.Time,
) *Artifact {
	return &Artifact{
		id:         id,
		deliveryID: deliveryID,
		courierID:  courierID,
		photoType:  photoType,
		url:        url,
		analysis:   analysis,
		verified:   verified,
		location:   location,
		capturedAt: capturedAt,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate checks the artifact was created through a constructor.
func (a *Artifact) Validate() error {
	if a == nil {
		return ErrArtifactIsNotConstructed
	}
	return a.guard.Validate(ErrArtifactIsNotConstructed)
}

func (a *Artifact) ID() kernel.UUID {
	return a.id
}

func (a *Artifact) DeliveryID() kernel.UUID {
	return a.deliveryID
}

// CourierID identifies the courier who captured the evidence.
func (a *Artifact) CourierID() kernel.UUID {
	return a.courierID
}

func (a *Artifact) PhotoType() PhotoType {
	return a.photoType
}

func (a *Artifact) URL() string {
	return a.url
}

func (a *Artifact) Analysis() Analysis {
	return a.analysis
}

func (a *Artifact) Verified() bool {
	return a.verified
}

// Location returns where the photo was captured, nil when unknown.
func (a *Artifact) Location() *kernel.GeoPoint {
	return a.location
}

func (a *Artifact) CapturedAt() time.Time {
	return a.capturedAt
}

// SignatureRecord stores the signer details that accompany an uploaded
// signature artifact.
type SignatureRecord struct {
	DeliveryID  kernel.UUID
	ArtifactID  kernel.UUID
	SignerName  string
	SignerPhone string
	SignedAt    time.Time
}
