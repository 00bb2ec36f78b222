package commands

import (
	"context"
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/payment"
	"quickdrop/internal/pkg/errs"
)

// RecordPaymentResult reports which halves of the write took effect.
type RecordPaymentResult struct {
	// PaymentID is the stored payment, new or previously recorded.
	PaymentID kernel.UUID
	// Recorded is false when the transaction id was already on record.
	Recorded bool
	// ParcelUpdated is false when the parcel was already paid with this transaction id.
	ParcelUpdated bool
}

// RecordPaymentCommandHandler persists a payment and flips its parcel to paid
// in one transaction.
//
// Submitting the same transaction id again is a no-op that returns the stored
// payment. A different transaction id against an already-paid parcel is a
// ConflictError and nothing is written.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (RecordPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	paymentRepo := uow.PaymentRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return RecordPaymentResult{}, err
	}

	changed, err := p.MarkPaid(cmd.TransactionID(), cmd.PaidAt())
	if err != nil {
		return RecordPaymentResult{}, err
	}

	if !changed {
		existing, err := paymentRepo.GetByTransactionID(ctx, cmd.TransactionID())
		if err == nil {
			return RecordPaymentResult{PaymentID: existing.ID()}, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return RecordPaymentResult{}, err
		}
	}

	pay, err := payment.NewPayment(
		cmd.PaymentID(),
		p.ID(),
		cmd.Payer(),
		cmd.Amount(),
		cmd.TransactionID(),
		cmd.Method(),
		cmd.PaidAt(),
	)
	if err != nil {
		return RecordPaymentResult{}, err
	}

	if err = paymentRepo.Add(ctx, pay); err != nil {
		return RecordPaymentResult{}, err
	}

	if changed {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return RecordPaymentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordPaymentResult{}, err
	}

	return RecordPaymentResult{
		PaymentID:     pay.ID(),
		Recorded:      true,
		ParcelUpdated: changed,
	}, nil
}
