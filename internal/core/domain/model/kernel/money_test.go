package kernel_test

import (
	"math"
	"testing"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromMajor(t *testing.T) {
	t.Run("should convert to minor units", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMajor(150.5)

		require.NoError(t, err)
		assert.Equal(t, int64(15050), m.Minor())
		assert.InDelta(t, 150.5, m.Major(), 0.0001)
		assert.Equal(t, "150.50", m.String())
	})

	t.Run("should round float noise to the nearest minor unit", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMajor(0.29)

		require.NoError(t, err)
		assert.Equal(t, int64(29), m.Minor())
	})

	t.Run("should reject zero and negative amounts", func(t *testing.T) {
		for _, amount := range []float64{0, -1, 0.001} {
			_, err := kernel.NewMoneyFromMajor(amount)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "amount %v", amount)
		}
	})

	t.Run("should reject amounts above the processor limit", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMajor(1_000_000)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject NaN", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMajor(math.NaN())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	var m kernel.Money

	require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)

	valid, err := kernel.NewMoneyFromMinor(1)
	require.NoError(t, err)
	require.NoError(t, valid.Validate())
	assert.True(t, valid.IsEqual(valid))
}
