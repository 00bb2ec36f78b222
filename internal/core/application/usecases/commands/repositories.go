// Package commands contains the operations that change parcels, payments,
// users, riders and earnings. Each command is a validated value object; each
// handler opens a unit of work, applies domain rules and commits, so a
// command either lands in full or not at all.
package commands

import (
	"context"

	"quickdrop/internal/core/ports"
)

// Handlers depend on the narrowest unit of work that covers the collections
// they touch. The postgres unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	EarningRepoFactory interface {
		EarningRepository() ports.EarningRepository
	}

	// ParcelUoW covers commands that only touch the parcel collection.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PaymentUoW writes a payment and its parcel in one transaction.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// DispatchUoW writes the parcel and the rider of an assignment together.
	DispatchUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ApprovalUoW activates a rider and promotes the matching user together.
	ApprovalUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// SettlementUoW inserts an earning and flags the parcel as cashed out.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   earningRepo := uow.EarningRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		ParcelRepoFactory
		EarningRepoFactory
	}

	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
