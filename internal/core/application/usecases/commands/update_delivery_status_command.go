package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a rider reporting progress on a parcel.
type UpdateDeliveryStatusCommand struct {
	parcelID kernel.UUID
	status   parcel.DeliveryStatus
	rider    kernel.Email
	guard    guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand parses the status as sent by the client;
// an unrecognized status is a ValueIsInvalidError.
func NewUpdateDeliveryStatusCommand(parcelID kernel.UUID, status string, rider kernel.Email) (UpdateDeliveryStatusCommand, error) {
	parsed, statusErr := parcel.ParseDeliveryStatus(status)
	if err := errors.Join(parcelID.Validate(), statusErr, rider.Validate()); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		parcelID: parcelID,
		status:   parsed,
		rider:    rider,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c UpdateDeliveryStatusCommand) Status() parcel.DeliveryStatus { return c.status }
func (c UpdateDeliveryStatusCommand) Rider() kernel.Email           { return c.rider }

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}
