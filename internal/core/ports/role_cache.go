package ports

import (
	"context"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"
)

// RoleCache keeps recently read roles close to the authorization gate.
// A miss is reported as ok=false, not as an error.
type RoleCache interface {
	Get(ctx context.Context, email kernel.Email) (role user.Role, ok bool, err error)
	Set(ctx context.Context, email kernel.Email, role user.Role, ttl time.Duration) error
	Invalidate(ctx context.Context, email kernel.Email) error
}
