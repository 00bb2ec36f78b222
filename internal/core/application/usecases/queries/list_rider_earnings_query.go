package queries

import (
	"errors"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrListRiderEarningsQueryIsNotConstructed = errors.New(
	"ListRiderEarningsQuery must be created via NewListRiderEarningsQuery constructor",
)

type ListRiderEarningsQuery struct {
	rider kernel.Email
	guard guard.ConstructorGuard
}

func NewListRiderEarningsQuery(rider kernel.Email) (ListRiderEarningsQuery, error) {
	if err := rider.Validate(); err != nil {
		return ListRiderEarningsQuery{}, err
	}
	return ListRiderEarningsQuery{rider: rider, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRiderEarningsQuery) Rider() kernel.Email { return q.rider }

func (q ListRiderEarningsQuery) Validate() error {
	return q.guard.Validate(ErrListRiderEarningsQueryIsNotConstructed)
}

type EarningView struct {
	ID         kernel.UUID
	ParcelID   kernel.UUID
	TrackingID string
	Amount     float64
	RiderEmail string
	RiderName  string
	CashOutAt  time.Time
}
