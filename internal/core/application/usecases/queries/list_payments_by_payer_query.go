package queries

import (
	"errors"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrListPaymentsByPayerQueryIsNotConstructed = errors.New(
	"ListPaymentsByPayerQuery must be created via NewListPaymentsByPayerQuery constructor",
)

// ListPaymentsByPayerQuery is a user's payment history, most recent first.
type ListPaymentsByPayerQuery struct {
	payer kernel.Email
	guard guard.ConstructorGuard
}

func NewListPaymentsByPayerQuery(payer kernel.Email) (ListPaymentsByPayerQuery, error) {
	if err := payer.Validate(); err != nil {
		return ListPaymentsByPayerQuery{}, err
	}
	return ListPaymentsByPayerQuery{payer: payer, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsByPayerQuery) Payer() kernel.Email { return q.payer }

func (q ListPaymentsByPayerQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsByPayerQueryIsNotConstructed)
}

type PaymentView struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	PayerEmail    string
	Amount        float64
	TransactionID string
	Method        string
	PaidAt        time.Time
}
