package parcel

import (
	"fmt"

	"quickdrop/internal/pkg/errs"
)

// PaymentStatus records whether the parcel's delivery fee was captured.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	Unpaid
	Paid
)

func (s PaymentStatus) String() string {
	switch s {
	case Unpaid:
		return "unpaid"
	case Paid:
		return "paid"
	default:
		return "unknown"
	}
}

func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParsePaymentStatus maps a stored value back to a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch raw {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a recognized payment status", raw),
		)
	}
}
