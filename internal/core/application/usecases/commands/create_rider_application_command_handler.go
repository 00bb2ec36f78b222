package commands

import (
	"context"
	"time"

	"quickdrop/internal/core/domain/model/rider"
)

// CreateRiderApplicationCommandHandler stores a pending rider. One application
// per email; a second one is a ConflictError.
type CreateRiderApplicationCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewCreateRiderApplicationCommandHandler(uowFactory RiderUoWFactory) CreateRiderApplicationCommandHandler {
	return CreateRiderApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRiderApplicationCommandHandler) Handle(ctx context.Context, cmd CreateRiderApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := rider.NewRider(cmd.RiderID(), cmd.Email(), cmd.Profile(), time.Now())
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

	if err = uow.RiderRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
