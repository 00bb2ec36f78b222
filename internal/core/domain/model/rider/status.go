package rider

import (
	"fmt"
	"strings"

	"quickdrop/internal/pkg/errs"
)

// Status is the approval state of a rider.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

// ParseStatus accepts "pending", "active" and the "approved" alias used by the admin UI.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "active", "approved":
		return StatusActive, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"rider status",
			fmt.Errorf("%q is not a recognized rider status", raw),
		)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	if s != StatusPending && s != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("rider status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// WorkStatusCollected is set when a parcel is handed to the rider.
const WorkStatusCollected = "collected"
