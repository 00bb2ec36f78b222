// Package earning models the ledger entry written when a rider cashes out a delivered parcel.
package earning

import (
	"errors"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrEarningIsNotConstructed = errors.New("Earning must be created via NewEarning constructor")

// Earning is immutable. There is at most one per parcel; the parcel's cash-out
// flag and a unique parcel_id column both enforce that.
type Earning struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	trackingID string
	amount     kernel.Money
	riderEmail kernel.Email
	riderName  string
	cashOutAt  time.Time
	guard      guard.ConstructorGuard
}

func NewEarning(
	id kernel.UUID,
	parcelID kernel.UUID,
	trackingID string,
	amount kernel.Money,
	riderEmail kernel.Email,
	riderName string,
	cashOutAt time.Time,
) (*Earning, error) {
	riderName = strings.TrimSpace(riderName)

	var nameErr error
	if riderName == "" {
		nameErr = errs.NewValueIsRequiredError("riderName")
	}

	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		amount.Validate(),
		riderEmail.Validate(),
		nameErr,
	); err != nil {
		return nil, err
	}

	return &Earning{
		id:         id,
		parcelID:   parcelID,
		trackingID: strings.TrimSpace(trackingID),
		amount:     amount,
		riderEmail: riderEmail,
		riderName:  riderName,
		cashOutAt:  cashOutAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (e *Earning) Validate() error {
	if e == nil {
		return ErrEarningIsNotConstructed
	}
	return e.guard.Validate(ErrEarningIsNotConstructed)
}

func (e *Earning) ID() kernel.UUID          { return e.id }
func (e *Earning) ParcelID() kernel.UUID    { return e.parcelID }
func (e *Earning) TrackingID() string       { return e.trackingID }
func (e *Earning) Amount() kernel.Money     { return e.amount }
func (e *Earning) RiderEmail() kernel.Email { return e.riderEmail }
func (e *Earning) RiderName() string        { return e.riderName }
func (e *Earning) CashOutAt() time.Time     { return e.cashOutAt }
