// Package userrepo persists users in the users table.
package userrepo

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Name        string
	PhotoURL    string
	Role        string `gorm:"not null;default:user"`
	CreatedAt   time.Time
	LastLoginAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	s := u.Snapshot()
	return UserDTO{
		ID:          s.ID.Bytes(),
		Email:       s.Email.String(),
		Name:        s.Name,
		PhotoURL:    s.PhotoURL,
		Role:        s.Role.String(),
		CreatedAt:   s.CreatedAt,
		LastLoginAt: s.LastLoginAt,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(user.Snapshot{
		ID:          id,
		Email:       email,
		Name:        dto.Name,
		PhotoURL:    dto.PhotoURL,
		Role:        role,
		CreatedAt:   dto.CreatedAt,
		LastLoginAt: dto.LastLoginAt,
	})
}
