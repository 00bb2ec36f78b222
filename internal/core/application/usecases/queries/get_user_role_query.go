package queries

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

// GetUserRoleQuery lets the web client decide which dashboard to show.
type GetUserRoleQuery struct {
	email kernel.Email
	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return GetUserRoleQuery{}, err
	}
	return GetUserRoleQuery{email: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRoleQuery) Email() kernel.Email { return q.email }

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}
