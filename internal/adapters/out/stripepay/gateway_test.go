package stripepay_test

import (
	"errors"
	"testing"

	"quickdrop/internal/adapters/out/stripepay"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func TestGateway_CreatePaymentIntent_SendsMinorUnits(t *testing.T) {
	ctx := t.Context()
	intents := &MockIntentCreator{}
	intents.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
		return *p.Amount == 15050 &&
			*p.Currency == "bdt" &&
			len(p.PaymentMethodTypes) == 1 && *p.PaymentMethodTypes[0] == "card" &&
			p.Context == ctx
	})).Return(&stripe.PaymentIntent{ClientSecret: "pi_1_secret_2"}, nil)

	gw, err := stripepay.NewGateway(intents, "")
	require.NoError(t, err)
	amount, err := kernel.NewMoneyFromMajor(150.5)
	require.NoError(t, err)

	secret, err := gw.CreatePaymentIntent(ctx, amount)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_2", secret)
	intents.AssertExpectations(t)
}

func TestGateway_CreatePaymentIntent_ProcessorError(t *testing.T) {
	intents := &MockIntentCreator{}
	intents.On("New", mock.Anything).Return(nil, errors.New("card_declined"))

	gw, err := stripepay.NewGateway(intents, "USD")
	require.NoError(t, err)
	amount, err := kernel.NewMoneyFromMajor(10)
	require.NoError(t, err)

	_, err = gw.CreatePaymentIntent(t.Context(), amount)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_declined")
	assert.False(t, errs.IsInvalidArgument(err))
}

func TestGateway_CreatePaymentIntent_ZeroAmount(t *testing.T) {
	intents := &MockIntentCreator{}
	gw, err := stripepay.NewGateway(intents, "bdt")
	require.NoError(t, err)

	_, err = gw.CreatePaymentIntent(t.Context(), kernel.Money{})

	require.Error(t, err)
	intents.AssertNotCalled(t, "New", mock.Anything)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := stripepay.New(" ", "bdt")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
