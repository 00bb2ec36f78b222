// Package riderrepo persists rider aggregates in the riders table.
package riderrepo

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

type RiderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"uniqueIndex;not null"`
	Name             string    `gorm:"not null"`
	Phone            string
	Age              int
	Region           string `gorm:"index;not null"`
	District         string
	NationalID       string
	BikeBrand        string
	BikeRegistration string
	Status           string `gorm:"index;not null"`
	WorkStatus       string
	CreatedAt        time.Time
	Version          int64 `gorm:"not null;default:0"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	s := r.Snapshot()
	return RiderDTO{
		ID:               s.ID.Bytes(),
		Email:            s.Email.String(),
		Name:             s.Profile.Name,
		Phone:            s.Profile.Phone,
		Age:              s.Profile.Age,
		Region:           s.Profile.Region,
		District:         s.Profile.District,
		NationalID:       s.Profile.NationalID,
		BikeBrand:        s.Profile.BikeBrand,
		BikeRegistration: s.Profile.BikeRegistration,
		Status:           s.Status.String(),
		WorkStatus:       s.WorkStatus,
		CreatedAt:        s.CreatedAt,
		Version:          s.Version,
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	return rider.RestoreRider(rider.Snapshot{
		ID:    id,
		Email: email,
		Profile: rider.Profile{
			Name:             dto.Name,
			Phone:            dto.Phone,
			Age:              dto.Age,
			Region:           dto.Region,
			District:         dto.District,
			NationalID:       dto.NationalID,
			BikeBrand:        dto.BikeBrand,
			BikeRegistration: dto.BikeRegistration,
		},
		Status:     rider.Status(dto.Status),
		WorkStatus: dto.WorkStatus,
		CreatedAt:  dto.CreatedAt,
		Version:    dto.Version,
	})
}
