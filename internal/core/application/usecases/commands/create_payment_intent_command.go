package commands

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand asks the payment processor to open a card payment.
type CreatePaymentIntentCommand struct {
	amount kernel.Money
	guard  guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand takes the amount in major currency units.
func NewCreatePaymentIntentCommand(amount float64) (CreatePaymentIntentCommand, error) {
	money, err := kernel.NewMoneyFromMajor(amount)
	if err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return CreatePaymentIntentCommand{
		amount: money,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentIntentCommand) Amount() kernel.Money { return c.amount }

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}
