// Package payment models a captured payment for a parcel's delivery fee.
// Payments are immutable once recorded.
package payment

import (
	"errors"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment links a processor transaction to exactly one parcel.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	payer         kernel.Email
	amount        kernel.Money
	transactionID string
	method        string
	paidAt        time.Time
	guard         guard.ConstructorGuard
}

// NewPayment validates and builds a payment. It is used both for new captures
// and for rows read back from storage.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	payer kernel.Email,
	amount kernel.Money,
	transactionID string,
	method string,
	paidAt time.Time,
) (*Payment, error) {
	transactionID = strings.TrimSpace(transactionID)

	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transactionId")
	}
	var paidErr error
	if paidAt.IsZero() {
		paidErr = errs.NewValueIsRequiredError("paidAt")
	}

	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		payer.Validate(),
		amount.Validate(),
		txErr,
		paidErr,
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		parcelID:      parcelID,
		payer:         payer,
		amount:        amount,
		transactionID: transactionID,
		method:        strings.TrimSpace(method),
		paidAt:        paidAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID       { return p.id }
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }
func (p *Payment) Payer() kernel.Email   { return p.payer }
func (p *Payment) Amount() kernel.Money  { return p.amount }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }
