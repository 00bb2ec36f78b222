package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"
)

// PaymentGateway talks to the external payment processor.
type PaymentGateway interface {
	// CreatePaymentIntent opens a card payment for amount and returns the client
	// secret the browser uses to confirm it.
	CreatePaymentIntent(ctx context.Context, amount kernel.Money) (string, error)
}
