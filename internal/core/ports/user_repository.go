package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"
)

// UserRepository persists users. Email is unique.
type UserRepository interface {
	// Add persists a new user. An email already on record is a ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}
