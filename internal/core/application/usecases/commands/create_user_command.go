package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a user at signup. Any role the client sends is
// ignored: new users always hold the default role.
type CreateUserCommand struct {
	userID   kernel.UUID
	email    kernel.Email
	name     string
	photoURL string
	guard    guard.ConstructorGuard
}

func NewCreateUserCommand(email, name, photoURL string) (CreateUserCommand, error) {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		userID:   kernel.NewUUID(),
		email:    parsed,
		name:     name,
		photoURL: photoURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }
func (c CreateUserCommand) Email() kernel.Email { return c.email }
func (c CreateUserCommand) Name() string        { return c.name }
func (c CreateUserCommand) PhotoURL() string    { return c.photoURL }

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}
