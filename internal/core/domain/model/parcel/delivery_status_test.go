package parcel_test

import (
	"testing"

	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected parcel.DeliveryStatus
	}{
		{"not_delivered", parcel.NotDelivered},
		{"not delivered", parcel.NotDelivered},
		{"rider_assigned", parcel.RiderAssigned},
		{"rider assigned", parcel.RiderAssigned},
		{"in_transit", parcel.InTransit},
		{"in-transit", parcel.InTransit},
		{" Delivered ", parcel.Delivered},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			status, err := parcel.ParseDeliveryStatus(tc.raw)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := parcel.ParseDeliveryStatus("lost")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"lost" is not a recognized delivery status`)
	})
}

func TestDeliveryStatus_String(t *testing.T) {
	assert.Equal(t, "not_delivered", parcel.NotDelivered.String())
	assert.Equal(t, "rider_assigned", parcel.RiderAssigned.String())
	assert.Equal(t, "in_transit", parcel.InTransit.String())
	assert.Equal(t, "delivered", parcel.Delivered.String())
	assert.Equal(t, "unknown", parcel.DeliveryUnknown.String())
}

func TestDeliveryStatus_Assign(t *testing.T) {
	t.Run("should assign a waiting parcel", func(t *testing.T) {
		next, err := parcel.NotDelivered.Assign()

		require.NoError(t, err)
		assert.Equal(t, parcel.RiderAssigned, next)
	})

	t.Run("should conflict once a rider is on it", func(t *testing.T) {
		for _, s := range []parcel.DeliveryStatus{parcel.RiderAssigned, parcel.InTransit, parcel.Delivered} {
			_, err := s.Assign()

			require.ErrorIs(t, err, errs.ErrConflict, "from %s", s)
		}
	})
}

func TestDeliveryStatus_Advance(t *testing.T) {
	t.Run("should allow the two forward steps", func(t *testing.T) {
		next, err := parcel.RiderAssigned.Advance(parcel.InTransit)
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, next)

		next, err = parcel.InTransit.Advance(parcel.Delivered)
		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, next)
	})

	rejected := []struct {
		name   string
		from   parcel.DeliveryStatus
		target parcel.DeliveryStatus
	}{
		{"delivered straight from not_delivered", parcel.NotDelivered, parcel.Delivered},
		{"in_transit from not_delivered", parcel.NotDelivered, parcel.InTransit},
		{"skip in_transit", parcel.RiderAssigned, parcel.Delivered},
		{"repeat in_transit", parcel.InTransit, parcel.InTransit},
		{"backward to rider_assigned", parcel.InTransit, parcel.RiderAssigned},
		{"backward from delivered", parcel.Delivered, parcel.InTransit},
		{"unknown target", parcel.RiderAssigned, parcel.DeliveryUnknown},
	}

	for _, tc := range rejected {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := tc.from.Advance(tc.target)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestDeliveryStatus_IsActive(t *testing.T) {
	assert.False(t, parcel.NotDelivered.IsActive())
	assert.True(t, parcel.RiderAssigned.IsActive())
	assert.True(t, parcel.InTransit.IsActive())
	assert.False(t, parcel.Delivered.IsActive())
}

func TestParsePaymentStatus(t *testing.T) {
	s, err := parcel.ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, parcel.Paid, s)
	assert.Equal(t, "paid", s.String())

	_, err = parcel.ParsePaymentStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
