package commands

import (
	"errors"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand stores a confirmed card payment and marks its parcel paid.
type RecordPaymentCommand struct {
	paymentID     kernel.UUID
	parcelID      kernel.UUID
	payer         kernel.Email
	amount        kernel.Money
	transactionID string
	method        string
	paidAt        time.Time
	guard         guard.ConstructorGuard
}

// NewRecordPaymentCommand validates a payment confirmation. A zero paidAt is
// stamped with the current time.
func NewRecordPaymentCommand(
	parcelID kernel.UUID,
	payer kernel.Email,
	amount float64,
	transactionID string,
	method string,
	paidAt time.Time,
) (RecordPaymentCommand, error) {
	money, amountErr := kernel.NewMoneyFromMajor(amount)

	transactionID = strings.TrimSpace(transactionID)
	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transactionId")
	}

	if err := errors.Join(parcelID.Validate(), payer.Validate(), amountErr, txErr); err != nil {
		return RecordPaymentCommand{}, err
	}

	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return RecordPaymentCommand{
		paymentID:     kernel.NewUUID(),
		parcelID:      parcelID,
		payer:         payer,
		amount:        money,
		transactionID: transactionID,
		method:        strings.TrimSpace(method),
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c RecordPaymentCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c RecordPaymentCommand) Payer() kernel.Email    { return c.payer }
func (c RecordPaymentCommand) Amount() kernel.Money   { return c.amount }
func (c RecordPaymentCommand) TransactionID() string  { return c.transactionID }
func (c RecordPaymentCommand) Method() string         { return c.method }
func (c RecordPaymentCommand) PaidAt() time.Time      { return c.paidAt }

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}
