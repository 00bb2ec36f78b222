package commands

import (
	"context"
	"time"

	"quickdrop/internal/core/domain/model/user"
)

// CreateUserCommandHandler inserts a user. An email already on record is
// reported by the repository as a ConflictError.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), cmd.PhotoURL(), time.Now())
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

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
