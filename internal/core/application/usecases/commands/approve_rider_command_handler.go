package commands

import (
	"context"

	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/core/ports"
)

// ApproveRiderResult is the final state of both records touched by an approval.
type ApproveRiderResult struct {
	Rider rider.Snapshot
	User  user.Snapshot
	// UserPromoted is false when the user already held the rider or admin role.
	UserPromoted bool
}

// ApproveRiderCommandHandler activates a rider and promotes the user with the
// same email to the rider role, in one transaction. The user must exist: an
// approved rider without a user record could never pass a role check.
type ApproveRiderCommandHandler struct {
	uowFactory ApprovalUoWFactory
	roleCache  ports.RoleCache
}

// NewApproveRiderCommandHandler accepts a nil roleCache when roles are not cached.
func NewApproveRiderCommandHandler(uowFactory ApprovalUoWFactory, roleCache ports.RoleCache) ApproveRiderCommandHandler {
	return ApproveRiderCommandHandler{
		uowFactory: uowFactory,
		roleCache:  roleCache,
	}
}

func (h ApproveRiderCommandHandler) Handle(ctx context.Context, cmd ApproveRiderCommand) (ApproveRiderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApproveRiderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApproveRiderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	userRepo := uow.UserRepository()

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return ApproveRiderResult{}, err
	}
	if err = r.Approve(); err != nil {
		return ApproveRiderResult{}, err
	}

	u, err := userRepo.GetByEmail(ctx, r.Email())
	if err != nil {
		return ApproveRiderResult{}, err
	}
	promoted := u.PromoteToRider()

	if err = riderRepo.Update(ctx, r); err != nil {
		return ApproveRiderResult{}, err
	}
	if promoted {
		if err = userRepo.Update(ctx, u); err != nil {
			return ApproveRiderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ApproveRiderResult{}, err
	}

	if promoted && h.roleCache != nil {
		_ = h.roleCache.Invalidate(ctx, u.Email())
	}

	return ApproveRiderResult{
		Rider:        r.Snapshot(),
		User:         u.Snapshot(),
		UserPromoted: promoted,
	}, nil
}
