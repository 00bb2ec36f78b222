package commands

import (
	"errors"
	"strings"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand is an admin setting a user's role.
type UpdateUserRoleCommand struct {
	userID kernel.UUID
	role   user.Role
	guard  guard.ConstructorGuard
}

func NewUpdateUserRoleCommand(userID kernel.UUID, role string) (UpdateUserRoleCommand, error) {
	if strings.TrimSpace(role) == "" {
		return UpdateUserRoleCommand{}, errors.Join(userID.Validate(), errs.NewValueIsRequiredError("role"))
	}
	parsed, roleErr := user.ParseRole(role)
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return UpdateUserRoleCommand{
		userID: userID,
		role:   parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserRoleCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateUserRoleCommand) Role() user.Role     { return c.role }

func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}
