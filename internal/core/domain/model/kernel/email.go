package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"quickdrop/internal/pkg/errs"
)

// ErrEmailIsNotConstructed indicates a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email")

// Email is a bare mailbox address, trimmed and lower-cased so that the address
// from a verified token compares equal to the one stored on documents.
type Email struct {
	value string
}

// NewEmail validates and normalizes raw. Display names ("Jane <j@x.com>") are rejected.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if addr.Address != normalized {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a bare address", raw),
		)
	}

	return Email{value: normalized}, nil
}

// MustNewEmail is NewEmail for literals known to be valid. It panics otherwise.
func MustNewEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the email was never set.
func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) Validate() error {
	if e.value == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
