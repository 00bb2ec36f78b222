package queries

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRiderEarningsQueryHandler struct {
	db *gorm.DB
}

func NewListRiderEarningsQueryHandler(db *gorm.DB) ListRiderEarningsQueryHandler {
	return ListRiderEarningsQueryHandler{db: db}
}

func (h ListRiderEarningsQueryHandler) Handle(
	ctx context.Context,
	query ListRiderEarningsQuery,
) ([]EarningView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	earnings := make([]EarningView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			tracking_id,
			amount_minor,
			rider_email,
			rider_name,
			cash_out_at
		FROM earnings
		WHERE rider_email = ?
		ORDER BY cash_out_at DESC, id
	`, query.Rider().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v EarningView
		var id, parcelID uuid.UUID
		var amountMinor int64

		err = rows.Scan(
			&id,
			&parcelID,
			&v.TrackingID,
			&amountMinor,
			&v.RiderEmail,
			&v.RiderName,
			&v.CashOutAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}
		v.Amount = float64(amountMinor) / kernel.MinorUnitsPerMajor
		earnings = append(earnings, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return earnings, nil
}
