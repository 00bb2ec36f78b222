package commands

import (
	"errors"
	"strings"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrCashOutCommandIsNotConstructed = errors.New(
	"CashOutCommand must be created via NewCashOutCommand constructor",
)

// CashOutCommand is a rider's claim for the earning on a delivered parcel.
type CashOutCommand struct {
	parcelID   kernel.UUID
	amount     kernel.Money
	riderEmail kernel.Email
	riderName  string
	trackingID string
	caller     kernel.Email
	guard      guard.ConstructorGuard
}

// NewCashOutCommand validates the claim. parcelID, amount, riderEmail and
// riderName are required; trackingID is optional and, when present, must
// match the parcel. caller is the verified email of the requesting rider.
func NewCashOutCommand(
	parcelID kernel.UUID,
	amount float64,
	riderEmail string,
	riderName string,
	trackingID string,
	caller kernel.Email,
) (CashOutCommand, error) {
	money, amountErr := kernel.NewMoneyFromMajor(amount)

	email, emailErr := kernel.NewEmail(riderEmail)

	riderName = strings.TrimSpace(riderName)
	var nameErr error
	if riderName == "" {
		nameErr = errs.NewValueIsRequiredError("riderName")
	}

	if err := errors.Join(parcelID.Validate(), amountErr, emailErr, nameErr, caller.Validate()); err != nil {
		return CashOutCommand{}, err
	}

	return CashOutCommand{
		parcelID:   parcelID,
		amount:     money,
		riderEmail: email,
		riderName:  riderName,
		trackingID: strings.TrimSpace(trackingID),
		caller:     caller,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CashOutCommand) ParcelID() kernel.UUID    { return c.parcelID }
func (c CashOutCommand) Amount() kernel.Money     { return c.amount }
func (c CashOutCommand) RiderEmail() kernel.Email { return c.riderEmail }
func (c CashOutCommand) RiderName() string        { return c.riderName }
func (c CashOutCommand) TrackingID() string       { return c.trackingID }
func (c CashOutCommand) Caller() kernel.Email     { return c.caller }

func (c CashOutCommand) Validate() error {
	return c.guard.Validate(ErrCashOutCommandIsNotConstructed)
}
