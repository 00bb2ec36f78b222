package queries

import (
	"errors"

	"quickdrop/internal/pkg/guard"
)

var ErrListUnassignedParcelsQueryIsNotConstructed = errors.New(
	"ListUnassignedParcelsQuery must be created via NewListUnassignedParcelsQuery constructor",
)

// ListUnassignedParcelsQuery lists paid parcels still waiting for a rider.
//
// Example:
//
//	query := NewListUnassignedParcelsQuery()
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, p := range parcels {
//	    fmt.Println(p.TrackingID, p.ReceiverRegion)
//	}
type ListUnassignedParcelsQuery struct {
	guard guard.ConstructorGuard
}

func NewListUnassignedParcelsQuery() ListUnassignedParcelsQuery {
	return ListUnassignedParcelsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUnassignedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListUnassignedParcelsQueryIsNotConstructed)
}
