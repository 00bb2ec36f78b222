package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListParcelsBySenderQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsBySenderQueryHandler(db *gorm.DB) ListParcelsBySenderQueryHandler {
	return ListParcelsBySenderQueryHandler{db: db}
}

func (h ListParcelsBySenderQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsBySenderQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE sender_email = ?
		ORDER BY created_at DESC, id
	`, query.Sender().String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanParcels(rows)
}
