package commands

import (
	"context"
	"errors"
	"fmt"

	"quickdrop/internal/core/domain/model/payment"
)

// ReconcilePaymentsResult counts what a sweep did.
type ReconcilePaymentsResult struct {
	Scanned    int
	Reconciled int
	Failed     int
}

// ReconcilePaymentsCommandHandler repairs payments left behind without a paid
// parcel, for example rows imported from the previous system. Each parcel is
// fixed in its own transaction so one bad row does not hold back the batch.
//
// Example:
//
//	cmd, _ := NewReconcilePaymentsCommand(DefaultReconcileBatchSize)
//	res, err := handler.Handle(ctx, cmd)
//	log.Printf("reconciled %d of %d", res.Reconciled, res.Scanned)
//	if err != nil {
//	    log.Printf("some payments could not be reconciled: %v", err)
//	}
type ReconcilePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewReconcilePaymentsCommandHandler(uowFactory PaymentUoWFactory) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the per-sweep counts and the joined errors of the payments
// that could not be applied.
func (h ReconcilePaymentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePaymentsCommand,
) (ReconcilePaymentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcilePaymentsResult{}, err
	}

	orphaned, err := h.uowFactory.Create().PaymentRepository().ListOrphaned(ctx, cmd.BatchSize())
	if err != nil {
		return ReconcilePaymentsResult{}, err
	}

	result := ReconcilePaymentsResult{Scanned: len(orphaned)}
	var failures []error
	for _, pay := range orphaned {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		if err := h.apply(ctx, pay); err != nil {
			result.Failed++
			failures = append(failures, fmt.Errorf("payment %s: %w", pay.TransactionID(), err))
			continue
		}
		result.Reconciled++
	}

	return result, errors.Join(failures...)
}

func (h ReconcilePaymentsCommandHandler) apply(ctx context.Context, pay *payment.Payment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, pay.ParcelID())
	if err != nil {
		return err
	}

	changed, err := p.MarkPaid(pay.TransactionID(), pay.PaidAt())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
