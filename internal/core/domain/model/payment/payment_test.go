package payment_test

import (
	"testing"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/payment"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	amount, err := kernel.NewMoneyFromMajor(150)
	require.NoError(t, err)
	parcelID := kernel.NewUUID()

	t.Run("should build a payment", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), parcelID, kernel.MustNewEmail("a@x.com"), amount, " tx1 ", "card", time.Now())

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "tx1", p.TransactionID())
		assert.True(t, p.ParcelID().IsEqual(parcelID))
		assert.Equal(t, int64(15000), p.Amount().Minor())
	})

	t.Run("should require transaction and paid date", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), parcelID, kernel.MustNewEmail("a@x.com"), amount, "", "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "transactionId")
		assert.Contains(t, err.Error(), "paidAt")
	})

	t.Run("should require a parcel reference", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.UUID{}, kernel.MustNewEmail("a@x.com"), amount, "tx1", "", time.Now())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
