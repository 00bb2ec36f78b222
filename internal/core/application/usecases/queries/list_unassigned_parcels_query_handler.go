package queries

import (
	"context"

	"quickdrop/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// ListUnassignedParcelsQueryHandler serves the dispatch board, oldest parcel first.
type ListUnassignedParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListUnassignedParcelsQueryHandler(db *gorm.DB) ListUnassignedParcelsQueryHandler {
	return ListUnassignedParcelsQueryHandler{db: db}
}

func (h ListUnassignedParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListUnassignedParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE payment_status = ? AND delivery_status = ?
		ORDER BY created_at ASC, id
	`, parcel.Paid.String(), parcel.NotDelivered.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanParcels(rows)
}
