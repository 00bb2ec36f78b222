package services

import (
	"fmt"
	"time"

	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/pkg/errs"
)

// ParcelDispatcher assigns parcels to riders.
//
// Business rules:
//   - the parcel must be paid and still waiting for a rider
//   - the rider must be approved (active)
//   - on success the parcel is rider_assigned with the rider's name and email,
//     and the rider's work status is collected
//
// Both aggregates are mutated in memory only; the caller persists them in one
// unit of work so that neither half is applied alone.
type ParcelDispatcher struct{}

func NewParcelDispatcher() ParcelDispatcher {
	return ParcelDispatcher{}
}

// Dispatch assigns p to r. Preconditions on both sides are checked before
// either aggregate is touched. A parcel that already has a rider is a
// ConflictError whatever state the rider is in.
func (d ParcelDispatcher) Dispatch(p *parcel.Parcel, r *rider.Rider, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if err := p.DeliveryStatus().ValidateAssign(); err != nil {
		return err
	}
	if !r.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider",
			fmt.Errorf("rider %s is not approved", r.ID()),
		)
	}
	if p.PaymentStatus() != parcel.Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcel",
			fmt.Errorf("parcel %s is not paid", p.ID()),
		)
	}

	if err := p.AssignRider(r.Name(), r.Email(), now); err != nil {
		return err
	}
	return r.MarkCollected()
}
