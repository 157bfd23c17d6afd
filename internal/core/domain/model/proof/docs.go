// Package proof implements the proof-of-delivery capture workflow.
//
// Workflow is a finite-state machine over the steps
//
//	package -> recipient -> signature -> review -> uploading -> done
//
// parameterized by two requirements fixed at workflow start: whether a
// recipient photo is needed and whether a signature is needed. Disabled steps
// are skipped in both directions. Evidence lives in the workflow value until
// submission; nothing is uploaded before the workflow reaches review, and
// done is reachable only after every enabled-step precondition is satisfied
// and the ordered upload sequence succeeds.
//
// Artifact is the persisted form of one uploaded piece of evidence. A failed
// upload step produces a PartialSubmissionError and returns the workflow to
// review with all previously persisted artifacts intact.
package proof
