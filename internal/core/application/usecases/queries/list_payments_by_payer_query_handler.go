package queries

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPaymentsByPayerQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsByPayerQueryHandler(db *gorm.DB) ListPaymentsByPayerQueryHandler {
	return ListPaymentsByPayerQueryHandler{db: db}
}

func (h ListPaymentsByPayerQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsByPayerQuery,
) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]PaymentView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			payer_email,
			amount_minor,
			transaction_id,
			method,
			paid_at
		FROM payments
		WHERE payer_email = ?
		ORDER BY paid_at DESC, id
	`, query.Payer().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v PaymentView
		var id, parcelID uuid.UUID
		var amountMinor int64

		err = rows.Scan(
			&id,
			&parcelID,
			&v.PayerEmail,
			&amountMinor,
			&v.TransactionID,
			&v.Method,
			&v.PaidAt,
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
		payments = append(payments, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
