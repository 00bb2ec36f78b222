// Package queries contains the read side: projections served straight from
// PostgreSQL with hand-written SQL. Queries never go through the aggregates
// or the unit of work.
package queries

import (
	"database/sql"
	"time"

	"quickdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ParcelView is the read model shared by every parcel listing.
type ParcelView struct {
	ID              kernel.UUID
	TrackingID      string
	SenderEmail     string
	Title           string
	Type            string
	WeightKg        float64
	SenderName      string
	SenderRegion    string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	ReceiverRegion  string
	Cost            float64
	PaymentStatus   string
	DeliveryStatus  string
	TransactionID   string
	RiderName       string
	RiderEmail      string
	CreatedAt       time.Time
	TransitAt       *time.Time
	DeliveredAt     *time.Time
	CashOut         bool
}

const parcelColumns = `
	id,
	tracking_id,
	sender_email,
	title,
	parcel_type,
	weight_kg,
	sender_name,
	sender_region,
	receiver_name,
	receiver_phone,
	receiver_address,
	receiver_region,
	cost_minor,
	payment_status,
	delivery_status,
	transaction_id,
	rider_name,
	rider_email,
	created_at,
	transit_at,
	delivered_at,
	cash_out`

func scanParcels(rows *sql.Rows) ([]ParcelView, error) {
	defer rows.Close()

	parcels := make([]ParcelView, 0)
	for rows.Next() {
		var v ParcelView
		var id uuid.UUID
		var costMinor int64
		var transactionID, riderName, riderEmail sql.NullString

		err := rows.Scan(
			&id,
			&v.TrackingID,
			&v.SenderEmail,
			&v.Title,
			&v.Type,
			&v.WeightKg,
			&v.SenderName,
			&v.SenderRegion,
			&v.ReceiverName,
			&v.ReceiverPhone,
			&v.ReceiverAddress,
			&v.ReceiverRegion,
			&costMinor,
			&v.PaymentStatus,
			&v.DeliveryStatus,
			&transactionID,
			&riderName,
			&riderEmail,
			&v.CreatedAt,
			&v.TransitAt,
			&v.DeliveredAt,
			&v.CashOut,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = parcelID
		v.Cost = float64(costMinor) / kernel.MinorUnitsPerMajor
		v.TransactionID = transactionID.String
		v.RiderName = riderName.String
		v.RiderEmail = riderEmail.String
		parcels = append(parcels, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return parcels, nil
}
