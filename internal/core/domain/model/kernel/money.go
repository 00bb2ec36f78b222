package kernel

import (
	"fmt"
	"math"

	"quickdrop/internal/pkg/errs"
)

const (
	// MinorUnitsPerMajor is the number of minor units (poisha, cents) in one major unit.
	MinorUnitsPerMajor = 100

	// MaxMinorAmount bounds a single amount; it matches the payment processor's
	// eight-digit limit on minor units.
	MaxMinorAmount int64 = 99_999_999
)

// ErrMoneyIsNotConstructed indicates a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("amount")

// Money is a strictly positive amount in minor currency units.
// Callers speak in major units (e.g. 150.5 taka); storage and the payment
// processor use minor units (15050 poisha).
type Money struct {
	minor int64
}

// NewMoneyFromMajor converts a major-unit amount, rounding to the nearest minor unit.
func NewMoneyFromMajor(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a number", amount))
	}
	return NewMoneyFromMinor(int64(math.Round(amount * MinorUnitsPerMajor)))
}

// NewMoneyFromMinor wraps an amount that is already in minor units.
func NewMoneyFromMinor(minor int64) (Money, error) {
	if minor <= 0 || minor > MaxMinorAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", minor, 1, MaxMinorAmount)
	}
	return Money{minor: minor}, nil
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m.minor) / MinorUnitsPerMajor
}

func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

func (m Money) Validate() error {
	if m.minor <= 0 {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/MinorUnitsPerMajor, m.minor%MinorUnitsPerMajor)
}
