package queries

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchUsersQueryHandler struct {
	db *gorm.DB
}

func NewSearchUsersQueryHandler(db *gorm.DB) SearchUsersQueryHandler {
	return SearchUsersQueryHandler{db: db}
}

// Handle returns at most MaxSearchResults users ordered by email. No match is
// an empty slice, not an error.
func (h SearchUsersQueryHandler) Handle(ctx context.Context, query SearchUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			photo_url,
			role,
			created_at,
			last_login_at
		FROM users
		WHERE email ILIKE ? ESCAPE '\'
		ORDER BY email
		LIMIT ?
	`, query.pattern(), MaxSearchResults).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v UserView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&v.Email,
			&v.Name,
			&v.PhotoURL,
			&v.Role,
			&v.CreatedAt,
			&v.LastLoginAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		users = append(users, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
