package queries

import (
	"context"

	"quickdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle returns the stored role, or an ObjectNotFoundError for an unknown email.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var roles []string
	err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE email = ?
	`, query.Email().String()).Scan(&roles).Error
	if err != nil {
		return "", err
	}
	if len(roles) == 0 {
		return "", errs.NewObjectNotFoundError("user", query.Email())
	}
	return roles[0], nil
}
