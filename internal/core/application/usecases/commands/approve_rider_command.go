package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrApproveRiderCommandIsNotConstructed = errors.New(
	"ApproveRiderCommand must be created via NewApproveRiderCommand constructor",
)

// ApproveRiderCommand activates a pending rider application.
type ApproveRiderCommand struct {
	riderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewApproveRiderCommand(riderID kernel.UUID) (ApproveRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return ApproveRiderCommand{}, err
	}

	return ApproveRiderCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveRiderCommand) RiderID() kernel.UUID { return c.riderID }

func (c ApproveRiderCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderCommandIsNotConstructed)
}
