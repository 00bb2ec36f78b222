package queries

import (
	"errors"
	"fmt"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrListRiderDeliveriesQueryIsNotConstructed = errors.New(
	"ListRiderDeliveriesQuery must be created via NewListRiderDeliveriesQuery constructor",
)

// DeliveryScope selects which of a rider's parcels to list.
type DeliveryScope int

const (
	// ActiveDeliveries are parcels the rider still has to bring: rider_assigned or in_transit.
	ActiveDeliveries DeliveryScope = iota + 1
	// CompletedDeliveries are parcels the rider has delivered.
	CompletedDeliveries
)

func (s DeliveryScope) statuses() []string {
	switch s {
	case ActiveDeliveries:
		return []string{parcel.RiderAssigned.String(), parcel.InTransit.String()}
	case CompletedDeliveries:
		return []string{parcel.Delivered.String()}
	default:
		return nil
	}
}

type ListRiderDeliveriesQuery struct {
	rider kernel.Email
	scope DeliveryScope
	guard guard.ConstructorGuard
}

func NewListRiderDeliveriesQuery(rider kernel.Email, scope DeliveryScope) (ListRiderDeliveriesQuery, error) {
	var scopeErr error
	if scope.statuses() == nil {
		scopeErr = errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("unknown delivery scope %d", scope))
	}
	if err := errors.Join(rider.Validate(), scopeErr); err != nil {
		return ListRiderDeliveriesQuery{}, err
	}

	return ListRiderDeliveriesQuery{
		rider: rider,
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListRiderDeliveriesQuery) Rider() kernel.Email  { return q.rider }
func (q ListRiderDeliveriesQuery) Scope() DeliveryScope { return q.scope }

func (q ListRiderDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListRiderDeliveriesQueryIsNotConstructed)
}
