package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand books a new parcel for the authenticated sender.
// The parcel id and tracking reference are allocated here so the caller can
// report them once the handler succeeds.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(identity.Email, details, 150)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println(cmd.ParcelID(), cmd.TrackingID())
type CreateParcelCommand struct {
	parcelID   kernel.UUID
	trackingID string
	sender     kernel.Email
	details    parcel.Details
	cost       kernel.Money
	guard      guard.ConstructorGuard
}

// NewCreateParcelCommand validates the sender and the cost given in major
// currency units. Details are checked by the parcel aggregate.
func NewCreateParcelCommand(sender kernel.Email, details parcel.Details, cost float64) (CreateParcelCommand, error) {
	money, costErr := kernel.NewMoneyFromMajor(cost)
	if err := errors.Join(sender.Validate(), costErr); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcelID:   kernel.NewUUID(),
		trackingID: parcel.NewTrackingID(),
		sender:     sender,
		details:    details,
		cost:       money,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) ParcelID() kernel.UUID   { return c.parcelID }
func (c CreateParcelCommand) TrackingID() string      { return c.trackingID }
func (c CreateParcelCommand) Sender() kernel.Email    { return c.sender }
func (c CreateParcelCommand) Details() parcel.Details { return c.details }
func (c CreateParcelCommand) Cost() kernel.Money      { return c.cost }

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}
