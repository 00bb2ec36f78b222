// Package earningrepo persists the rider earnings ledger in the earnings table.
package earningrepo

import (
	"time"

	"quickdrop/internal/core/domain/model/earning"

	"github.com/google/uuid"
)

// EarningDTO has a unique parcel_id: the ledger holds at most one payout per parcel.
type EarningDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingID  string
	AmountMinor int64     `gorm:"not null"`
	RiderEmail  string    `gorm:"index;not null"`
	RiderName   string    `gorm:"not null"`
	CashOutAt   time.Time `gorm:"index;not null"`
}

func (EarningDTO) TableName() string {
	return "earnings"
}

func fromDomain(e *earning.Earning) EarningDTO {
	return EarningDTO{
		ID:          e.ID().Bytes(),
		ParcelID:    e.ParcelID().Bytes(),
		TrackingID:  e.TrackingID(),
		AmountMinor: e.Amount().Minor(),
		RiderEmail:  e.RiderEmail().String(),
		RiderName:   e.RiderName(),
		CashOutAt:   e.CashOutAt(),
	}
}
