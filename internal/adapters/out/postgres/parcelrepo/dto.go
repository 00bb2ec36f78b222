// Package parcelrepo persists parcel aggregates in the parcels table.
package parcelrepo

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row layout of the parcels table. Statuses are stored by
// their wire names so that read queries can filter on them directly.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID      string    `gorm:"uniqueIndex;not null"`
	SenderEmail     string    `gorm:"index;not null"`
	Title           string    `gorm:"not null"`
	ParcelType      string
	WeightKg        float64
	SenderName      string
	SenderRegion    string
	ReceiverName    string `gorm:"not null"`
	ReceiverPhone   string
	ReceiverAddress string
	ReceiverRegion  string `gorm:"not null"`
	CostMinor       int64  `gorm:"not null"`
	PaymentStatus   string `gorm:"index;not null"`
	DeliveryStatus  string `gorm:"index;not null"`
	TransactionID   string
	RiderName       string
	RiderEmail      string `gorm:"index"`
	CreatedAt       time.Time
	TransitAt       *time.Time
	DeliveredAt     *time.Time
	CashOut         bool  `gorm:"not null;default:false"`
	Version         int64 `gorm:"not null;default:0"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	s := p.Snapshot()
	return ParcelDTO{
		ID:              s.ID.Bytes(),
		TrackingID:      s.TrackingID,
		SenderEmail:     s.Sender.String(),
		Title:           s.Details.Title,
		ParcelType:      s.Details.Type,
		WeightKg:        s.Details.WeightKg,
		SenderName:      s.Details.SenderName,
		SenderRegion:    s.Details.SenderRegion,
		ReceiverName:    s.Details.ReceiverName,
		ReceiverPhone:   s.Details.ReceiverPhone,
		ReceiverAddress: s.Details.ReceiverAddress,
		ReceiverRegion:  s.Details.ReceiverRegion,
		CostMinor:       s.Cost.Minor(),
		PaymentStatus:   s.PaymentStatus.String(),
		DeliveryStatus:  s.DeliveryStatus.String(),
		TransactionID:   s.TransactionID,
		RiderName:       s.RiderName,
		RiderEmail:      s.RiderEmail.String(),
		CreatedAt:       s.CreatedAt,
		TransitAt:       s.TransitAt,
		DeliveredAt:     s.DeliveredAt,
		CashOut:         s.CashOut,
		Version:         s.Version,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sender, err := kernel.NewEmail(dto.SenderEmail)
	if err != nil {
		return nil, err
	}
	var rider kernel.Email
	if dto.RiderEmail != "" {
		if rider, err = kernel.NewEmail(dto.RiderEmail); err != nil {
			return nil, err
		}
	}
	cost, err := kernel.NewMoneyFromMinor(dto.CostMinor)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := parcel.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	deliveryStatus, err := parcel.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:         id,
		TrackingID: dto.TrackingID,
		Sender:     sender,
		Details: parcel.Details{
			Title:           dto.Title,
			Type:            dto.ParcelType,
			WeightKg:        dto.WeightKg,
			SenderName:      dto.SenderName,
			SenderRegion:    dto.SenderRegion,
			ReceiverName:    dto.ReceiverName,
			ReceiverPhone:   dto.ReceiverPhone,
			ReceiverAddress: dto.ReceiverAddress,
			ReceiverRegion:  dto.ReceiverRegion,
		},
		Cost:           cost,
		PaymentStatus:  paymentStatus,
		DeliveryStatus: deliveryStatus,
		TransactionID:  dto.TransactionID,
		RiderName:      dto.RiderName,
		RiderEmail:     rider,
		CreatedAt:      dto.CreatedAt,
		TransitAt:      dto.TransitAt,
		DeliveredAt:    dto.DeliveredAt,
		CashOut:        dto.CashOut,
		Version:        dto.Version,
	})
}
