package commands

import (
	"context"

	"quickdrop/internal/core/ports"
)

// CreatePaymentIntentCommandHandler delegates to the payment processor. It
// stores nothing: the payment is recorded later, once the browser has
// confirmed the intent.
type CreatePaymentIntentCommandHandler struct {
	gateway ports.PaymentGateway
}

func NewCreatePaymentIntentCommandHandler(gateway ports.PaymentGateway) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		gateway: gateway,
	}
}

// Handle returns the client secret of the new intent.
func (h CreatePaymentIntentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentIntentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.gateway.CreatePaymentIntent(ctx, cmd.Amount())
}
