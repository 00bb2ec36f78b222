package commands

import (
	"errors"

	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

const (
	DefaultReconcileBatchSize = 100
	MaxReconcileBatchSize     = 1000
)

var ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
	"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
)

// ReconcilePaymentsCommand sweeps payments whose parcel was never marked paid.
type ReconcilePaymentsCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

func NewReconcilePaymentsCommand(batchSize int) (ReconcilePaymentsCommand, error) {
	if batchSize < 1 || batchSize > MaxReconcileBatchSize {
		return ReconcilePaymentsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, MaxReconcileBatchSize)
	}

	return ReconcilePaymentsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcilePaymentsCommand) BatchSize() int { return c.batchSize }

func (c ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentsCommandIsNotConstructed)
}
