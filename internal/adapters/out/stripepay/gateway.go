// Package stripepay opens card payment intents with Stripe.
package stripepay

import (
	"context"
	"fmt"
	"strings"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// DefaultCurrency is the Bangladeshi taka.
const DefaultCurrency = "bdt"

// IntentCreator is the part of the Stripe PaymentIntents client the gateway uses.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type Gateway struct {
	intents  IntentCreator
	currency string
}

// New builds a gateway on the Stripe API with secretKey.
func New(secretKey, currency string) (*Gateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, errs.NewValueIsRequiredError("STRIPE_SECRET_KEY")
	}
	sc := client.New(secretKey, nil)
	return NewGateway(sc.PaymentIntents, currency)
}

func NewGateway(intents IntentCreator, currency string) (*Gateway, error) {
	if intents == nil {
		return nil, errs.NewValueIsRequiredError("intents")
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Gateway{intents: intents, currency: currency}, nil
}

// CreatePaymentIntent charges amount in minor units and returns the client
// secret the browser confirms the card payment with.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount kernel.Money) (string, error) {
	if err := amount.Validate(); err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount.Minor()),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
