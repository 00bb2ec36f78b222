// Package paymentrepo persists captured payments in the payments table.
package paymentrepo

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;index;not null"`
	PayerEmail    string    `gorm:"index;not null"`
	AmountMinor   int64     `gorm:"not null"`
	TransactionID string    `gorm:"uniqueIndex;not null"`
	Method        string
	PaidAt        time.Time `gorm:"index;not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		ParcelID:      p.ParcelID().Bytes(),
		PayerEmail:    p.Payer().String(),
		AmountMinor:   p.Amount().Minor(),
		TransactionID: p.TransactionID(),
		Method:        p.Method(),
		PaidAt:        p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	payer, err := kernel.NewEmail(dto.PayerEmail)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromMinor(dto.AmountMinor)
	if err != nil {
		return nil, err
	}
	return payment.NewPayment(id, parcelID, payer, amount, dto.TransactionID, dto.Method, dto.PaidAt)
}
