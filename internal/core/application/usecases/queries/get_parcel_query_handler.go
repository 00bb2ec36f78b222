package queries

import (
	"context"

	"quickdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when no parcel has the id.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return ParcelView{}, err
	}

	parcels, err := scanParcels(rows)
	if err != nil {
		return ParcelView{}, err
	}
	if len(parcels) == 0 {
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", query.ParcelID())
	}
	return parcels[0], nil
}
