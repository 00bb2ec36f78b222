package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRidersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewListRidersByStatusQueryHandler(db *gorm.DB) ListRidersByStatusQueryHandler {
	return ListRidersByStatusQueryHandler{db: db}
}

func (h ListRidersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListRidersByStatusQuery,
) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+riderColumns+`
		FROM riders
		WHERE status = ?
		ORDER BY created_at ASC, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanRiders(rows)
}
