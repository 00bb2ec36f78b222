package commands

import (
	"context"
	"fmt"
	"time"

	"quickdrop/internal/core/domain/services"
	"quickdrop/internal/pkg/errs"
)

// AssignRiderCommandHandler writes the parcel and the rider of an assignment
// in one transaction. The parcel write is version-checked: if another
// dispatcher assigned the parcel since it was read, the handler fails with a
// ConflictError and neither record changes. The rider's work status is set
// without a version check, so riders can take several parcels at once.
type AssignRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.ParcelDispatcher
}

func NewAssignRiderCommandHandler(uowFactory DispatchUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewParcelDispatcher(),
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if err = p.DeliveryStatus().ValidateAssign(); err != nil {
		return err
	}

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if !r.Email().IsEqual(cmd.RiderEmail()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderEmail",
			fmt.Errorf("rider %s is registered as %s", r.ID(), r.Email()),
		)
	}

	if err = h.dispatcher.Dispatch(p, r, time.Now()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = riderRepo.UpdateWorkStatus(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
