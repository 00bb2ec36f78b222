package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/payment"
)

// PaymentRepository persists payments. Payments are insert-only.
type PaymentRepository interface {
	// Add persists a payment. A duplicate transaction id is a ConflictError.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByTransactionID returns the payment recorded for a processor transaction.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)

	// ListOrphaned returns up to limit payments whose parcel is still unpaid,
	// oldest first.
	ListOrphaned(ctx context.Context, limit int) ([]*payment.Payment, error)
}
