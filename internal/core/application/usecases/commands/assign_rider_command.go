package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand dispatches a paid parcel to an approved rider.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(parcelID, riderID, "rider@x.com")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // somebody else assigned the parcel first
//	}
type AssignRiderCommand struct {
	parcelID   kernel.UUID
	riderID    kernel.UUID
	riderEmail kernel.Email
	guard      guard.ConstructorGuard
}

// NewAssignRiderCommand takes the rider's email as the dispatcher saw it.
// The handler rejects the command if it no longer matches the rider record.
func NewAssignRiderCommand(parcelID, riderID kernel.UUID, riderEmail string) (AssignRiderCommand, error) {
	email, emailErr := kernel.NewEmail(riderEmail)
	if err := errors.Join(parcelID.Validate(), riderID.Validate(), emailErr); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID:   parcelID,
		riderID:    riderID,
		riderEmail: email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) ParcelID() kernel.UUID    { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID     { return c.riderID }
func (c AssignRiderCommand) RiderEmail() kernel.Email { return c.riderEmail }

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}
