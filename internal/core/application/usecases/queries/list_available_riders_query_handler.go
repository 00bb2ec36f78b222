package queries

import (
	"context"

	"quickdrop/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

type ListAvailableRidersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableRidersQueryHandler(db *gorm.DB) ListAvailableRidersQueryHandler {
	return ListAvailableRidersQueryHandler{db: db}
}

// Handle matches the region exactly. Work status is not considered: a rider
// carrying one parcel can still be offered another.
func (h ListAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableRidersQuery,
) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+riderColumns+`
		FROM riders
		WHERE status = ? AND region = ?
		ORDER BY name, id
	`, rider.StatusActive.String(), query.Region()).Rows()
	if err != nil {
		return nil, err
	}

	return scanRiders(rows)
}
