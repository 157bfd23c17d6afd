package commands

import (
	"context"
	"fmt"
	"time"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
	"courier-trust/internal/core/ports"
)

const proofContentType = "image/jpeg"

// SubmitProofCommandHandler uploads a workflow's captured evidence in a
// fixed order: package photo first, then recipient photo when captured,
// then signature when both image and signer name exist. Each step stores
// the file, runs image analysis and persists the artifact before the next
// step starts.
//
// A failed step stops the run and puts the workflow back on review. When
// earlier steps already persisted evidence the failure is reported as a
// PartialSubmissionError naming the step; with nothing stored yet the cause
// is returned as is. Artifacts persisted before the failure stay; a retry
// skips every photo type already stored for the delivery, so a flaky
// network never duplicates evidence.
type SubmitProofCommandHandler struct {
	proofRepo ports.ProofRepository
	storage   ports.ObjectStorage
	analyzer  ports.EvidenceAnalyzer
}

// NewSubmitProofCommandHandler creates a handler for proof submission.
func NewSubmitProofCommandHandler(
	proofRepo ports.ProofRepository,
	storage ports.ObjectStorage,
	analyzer ports.EvidenceAnalyzer,
) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{
		proofRepo: proofRepo,
		storage:   storage,
		analyzer:  analyzer,
	}
}

// Handle submits the workflow's evidence and completes the workflow.
func (h SubmitProofCommandHandler) Handle(ctx context.Context, cmd SubmitProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wf := cmd.Workflow()
	if err := wf.BeginUpload(); err != nil {
		return err
	}

	persisted, err := h.persistedPhotoTypes(ctx, wf.DeliveryID())
	if err != nil {
		wf.ReturnToReview()
		return err
	}

	// Artifacts persisted by an earlier attempt count as prior successes.
	succeeded := len(persisted)

	for _, photoType := range []proof.PhotoType{proof.PhotoTypePackage, proof.PhotoTypeRecipient} {
		data := wf.Photo(photoType)
		if len(data) == 0 || persisted[photoType] {
			continue
		}
		if _, err = h.uploadArtifact(ctx, wf, photoType, data); err != nil {
			wf.ReturnToReview()
			return h.stepError(photoType.String(), err, succeeded)
		}
		succeeded++
	}

	if wf.HasSignature() && !persisted[proof.PhotoTypeSignature] {
		if err = h.uploadSignature(ctx, wf); err != nil {
			wf.ReturnToReview()
			return h.stepError(proof.PhotoTypeSignature.String(), err, succeeded)
		}
	}

	return wf.Complete()
}

// stepError wraps an upload failure as PartialSubmissionError only when
// earlier steps already persisted evidence; a failure with nothing stored
// yet is an ordinary error.
func (h SubmitProofCommandHandler) stepError(failedStep string, cause error, succeeded int) error {
	if succeeded == 0 {
		return cause
	}
	return proof.NewPartialSubmissionError(failedStep, cause)
}

func (h SubmitProofCommandHandler) persistedPhotoTypes(
	ctx context.Context,
	deliveryID kernel.UUID,
) (map[proof.PhotoType]bool, error) {
	artifacts, err := h.proofRepo.GetArtifactsByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	persisted := make(map[proof.PhotoType]bool, len(artifacts))
	for _, artifact := range artifacts {
		persisted[artifact.PhotoType()] = true
	}
	return persisted, nil
}

func (h SubmitProofCommandHandler) uploadArtifact(
	ctx context.Context,
	wf *proof.Workflow,
	photoType proof.PhotoType,
	data []byte,
) (*proof.Artifact, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("proofs/%s/%s_%d.jpg", wf.DeliveryID(), photoType, now.UnixMilli())

	url, err := h.storage.Put(ctx, key, data, proofContentType)
	if err != nil {
		return nil, err
	}

	analysis, err := h.analyzer.Analyze(ctx, url, photoType)
	if err != nil {
		return nil, err
	}

	artifact, err := proof.NewArtifact(
		kernel.NewUUID(), wf.DeliveryID(), wf.CourierID(), photoType, url, analysis, wf.Location(), now)
	if err != nil {
		return nil, err
	}

	if err = h.proofRepo.AddArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	return artifact, nil
}

func (h SubmitProofCommandHandler) uploadSignature(ctx context.Context, wf *proof.Workflow) error {
	artifact, err := h.uploadArtifact(ctx, wf, proof.PhotoTypeSignature, wf.SignatureImage())
	if err != nil {
		return err
	}

	return h.proofRepo.AddSignature(ctx, proof.SignatureRecord{
		DeliveryID:  wf.DeliveryID(),
		ArtifactID:  artifact.ID(),
		SignerName:  wf.SignerName(),
		SignerPhone: wf.SignerPhone(),
		SignedAt:    artifact.CapturedAt(),
	})
}
