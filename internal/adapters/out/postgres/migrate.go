package postgres

import (
	"quickdrop/internal/adapters/out/postgres/earningrepo"
	"quickdrop/internal/adapters/out/postgres/parcelrepo"
	"quickdrop/internal/adapters/out/postgres/paymentrepo"
	"quickdrop/internal/adapters/out/postgres/riderrepo"
	"quickdrop/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the five tables and their indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&userrepo.UserDTO{},
		&riderrepo.RiderDTO{},
		&earningrepo.EarningDTO{},
	)
}
