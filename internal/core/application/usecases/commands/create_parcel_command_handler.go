package commands

import (
	"context"
	"time"

	"quickdrop/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler inserts a new unpaid, undelivered parcel.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the parcel aggregate and persists it. A parcel.created event
// is published once the transaction commits.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingID(),
		cmd.Sender(),
		cmd.Details(),
		cmd.Cost(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
