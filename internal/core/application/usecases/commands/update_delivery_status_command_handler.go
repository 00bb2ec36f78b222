package commands

import (
	"context"
	"time"

	"quickdrop/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler moves a parcel one step forward on its
// delivery path. Only the rider the parcel is assigned to may do so.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if !p.IsAssignedTo(cmd.Rider()) {
		return errs.NewForbiddenError("parcel is not assigned to " + cmd.Rider().String())
	}

	if err = p.AdvanceDelivery(cmd.Status(), time.Now()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
