package paymentrepo

import (
	"context"
	"errors"

	"quickdrop/internal/adapters/out/postgres/pgerr"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/core/domain/model/payment"
	"quickdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "payment")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", transactionID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListOrphaned finds payments whose parcel was never flipped to paid.
func (r *GormPaymentRepository) ListOrphaned(ctx context.Context, limit int) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.*").
		Joins("JOIN parcels ON parcels.id = payments.parcel_id").
		Where("parcels.payment_status = ?", parcel.Unpaid.String()).
		Order("payments.paid_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
