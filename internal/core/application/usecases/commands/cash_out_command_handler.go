package commands

import (
	"context"
	"fmt"
	"time"

	"quickdrop/internal/core/domain/model/earning"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
)

// CashOutCommandHandler settles a rider's earning for one delivered parcel.
//
// The earning insert and the parcel's cash-out flag are written in one
// transaction. The parcel write is version-checked and the earnings table is
// unique per parcel, so two concurrent claims for the same parcel produce
// exactly one earning; the loser gets a ConflictError.
type CashOutCommandHandler struct {
	uowFactory SettlementUoWFactory
}

func NewCashOutCommandHandler(uowFactory SettlementUoWFactory) CashOutCommandHandler {
	return CashOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the new earning record.
func (h CashOutCommandHandler) Handle(ctx context.Context, cmd CashOutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if !cmd.RiderEmail().IsEqual(cmd.Caller()) {
		return kernel.UUID{}, errs.NewForbiddenError("riders may only cash out their own earnings")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	earningRepo := uow.EarningRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if cmd.TrackingID() != "" && cmd.TrackingID() != p.TrackingID() {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("parcel %s has tracking id %s", p.ID(), p.TrackingID()),
		)
	}

	now := time.Now()
	if err = p.CashOut(cmd.Caller(), now); err != nil {
		return kernel.UUID{}, err
	}

	e, err := earning.NewEarning(
		kernel.NewUUID(),
		p.ID(),
		p.TrackingID(),
		cmd.Amount(),
		cmd.RiderEmail(),
		cmd.RiderName(),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = earningRepo.Add(ctx, e); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return e.ID(), nil
}
