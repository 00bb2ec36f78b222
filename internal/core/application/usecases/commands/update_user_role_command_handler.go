package commands

import (
	"context"

	"quickdrop/internal/core/ports"
)

// UpdateUserRoleCommandHandler changes a user's role and drops the cached role
// so the authorization gate sees the change on the next request.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	roleCache  ports.RoleCache
}

// NewUpdateUserRoleCommandHandler accepts a nil roleCache when roles are not cached.
func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory, roleCache ports.RoleCache) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
		roleCache:  roleCache,
	}
}

// Handle reports whether the stored role changed.
func (h UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return false, err
	}

	changed, err := u.ChangeRole(cmd.Role())
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if h.roleCache != nil {
		// entries expire on their own; a failed invalidation only delays the change
		_ = h.roleCache.Invalidate(ctx, u.Email())
	}

	return true, nil
}
