package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRiderDeliveriesQueryHandler lists the parcels assigned to one rider.
// Active parcels come oldest first, the order the rider should work through
// them; completed ones newest first.
type ListRiderDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListRiderDeliveriesQueryHandler(db *gorm.DB) ListRiderDeliveriesQueryHandler {
	return ListRiderDeliveriesQueryHandler{db: db}
}

func (h ListRiderDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListRiderDeliveriesQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	order := "created_at ASC, id"
	if query.Scope() == CompletedDeliveries {
		order = "delivered_at DESC, id"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE rider_email = ? AND delivery_status IN ?
		ORDER BY `+order,
		query.Rider().String(), query.Scope().statuses(),
	).Rows()
	if err != nil {
		return nil, err
	}

	return scanParcels(rows)
}
