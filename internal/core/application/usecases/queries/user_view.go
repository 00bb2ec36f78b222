package queries

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
)

type UserView struct {
	ID          kernel.UUID
	Email       string
	Name        string
	PhotoURL    string
	Role        string
	CreatedAt   time.Time
	LastLoginAt time.Time
}
