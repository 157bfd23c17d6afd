package proof

import (
	"fmt"

	"courier-trust/internal/pkg/errs"
)

// Step represents one state of the capture workflow.
// It implements a state machine with defined transitions so evidence
// collection follows the required sequence.
//
// State transitions (disabled steps are skipped in both directions):
//
//	package ──> recipient ──> signature ──> review ──> uploading ──> done
//	                                          ^            │
//	                                          └────────────┘
//	                                     (upload failure returns to review)
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// StepPackage is the initial step: capture the package photo.
	StepPackage

	// StepRecipient captures the recipient photo when required.
	StepRecipient

	// StepSignature captures the signature and signer name when required.
	StepSignature

	// StepReview lets the operator check everything before submission.
	StepReview

	// StepUploading is the transient state while the ordered uploads run.
	StepUploading

	// StepDone is the terminal state after a fully successful submission.
	StepDone
)

// getStepStrings returns a map of Step values to their string representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:   "unknown",
		StepPackage:   "package",
		StepRecipient: "recipient",
		StepSignature: "signature",
		StepReview:    "review",
		StepUploading: "uploading",
		StepDone:      "done",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[Step]string{
		StepPackage:   "package",
		StepRecipient: "recipient",
		StepSignature: "signature",
		StepReview:    "review",
		StepUploading: "uploading",
		StepDone:      "done",
	}
}

// StepFromString parses a persisted step name back into a Step value.
func StepFromString(s string) (Step, error) {
	for step, name := range getValidStepStrings() {
		if name == s {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
		"step", fmt.Errorf("%q is not a valid step", s))
}

// Validate checks if the Step value is valid.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the lowercase step name.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}
