package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/pkg/guard"
)

var ErrCreateRiderApplicationCommandIsNotConstructed = errors.New(
	"CreateRiderApplicationCommand must be created via NewCreateRiderApplicationCommand constructor",
)

// CreateRiderApplicationCommand submits the rider form. The application is
// stored as pending until an admin approves it.
type CreateRiderApplicationCommand struct {
	riderID kernel.UUID
	email   kernel.Email
	profile rider.Profile
	guard   guard.ConstructorGuard
}

func NewCreateRiderApplicationCommand(email string, profile rider.Profile) (CreateRiderApplicationCommand, error) {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return CreateRiderApplicationCommand{}, err
	}

	return CreateRiderApplicationCommand{
		riderID: kernel.NewUUID(),
		email:   parsed,
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRiderApplicationCommand) RiderID() kernel.UUID   { return c.riderID }
func (c CreateRiderApplicationCommand) Email() kernel.Email    { return c.email }
func (c CreateRiderApplicationCommand) Profile() rider.Profile { return c.profile }

func (c CreateRiderApplicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderApplicationCommandIsNotConstructed)
}
