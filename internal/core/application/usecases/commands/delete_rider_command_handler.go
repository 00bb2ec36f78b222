package commands

import (
	"context"
)

// DeleteRiderCommandHandler hard-deletes a rider record, pending or active.
// The user's role is left as it is; an admin changes it separately.
type DeleteRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewDeleteRiderCommandHandler(uowFactory RiderUoWFactory) DeleteRiderCommandHandler {
	return DeleteRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRiderCommandHandler) Handle(ctx context.Context, cmd DeleteRiderCommand) error {
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

	if err := uow.RiderRepository().Delete(ctx, cmd.RiderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
