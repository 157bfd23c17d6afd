package commands

import (
	"errors"

	"courier-trust/internal/core/domain/model/proof"
	"courier-trust/internal/pkg/guard"
)

var ErrSubmitProofCommandIsNotConstructed = errors.New(
	"SubmitProofCommand must be created via NewSubmitProofCommand constructor",
)

// SubmitProofCommand requests submission of a capture workflow's evidence.
// The workflow must be on its review step; the handler drives it through
// uploading to done, or back to review on failure.
type SubmitProofCommand struct { //nolint:recvcheck //using for validation
	workflow *proof.Workflow

	guard guard.ConstructorGuard
}

// NewSubmitProofCommand creates a command to submit captured evidence.
func NewSubmitProofCommand(workflow *proof.Workflow) (SubmitProofCommand, error) {
	command := SubmitProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkflow(workflow); err != nil {
		return SubmitProofCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitProofCommandIsNotConstructed if validation fails.
func (c SubmitProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofCommandIsNotConstructed)
}

// Workflow returns the capture workflow being submitted.
func (c SubmitProofCommand) Workflow() *proof.Workflow {
	return c.workflow
}

func (c *SubmitProofCommand) setWorkflow(workflow *proof.Workflow) error {
	if err := workflow.Validate(); err != nil {
		return err
	}

	c.workflow = workflow
	return nil
}
