package parcel

import (
	"fmt"
	"strings"

	"quickdrop/internal/pkg/errs"
)

// DeliveryStatus is the position of a parcel on its delivery path.
type DeliveryStatus int

const (
	// DeliveryUnknown catches uninitialized values.
	DeliveryUnknown DeliveryStatus = iota

	// NotDelivered is the status of every new parcel.
	NotDelivered

	// RiderAssigned is set by dispatch.
	RiderAssigned

	// InTransit is set by the rider after pick-up.
	InTransit

	// Delivered is final.
	Delivered
)

var deliveryStatusNames = map[DeliveryStatus]string{
	NotDelivered:  "not_delivered",
	RiderAssigned: "rider_assigned",
	InTransit:     "in_transit",
	Delivered:     "delivered",
}

// deliveryStatusAliases accepts the spellings older web clients send.
var deliveryStatusAliases = map[string]DeliveryStatus{
	"not delivered":  NotDelivered,
	"not-delivered":  NotDelivered,
	"rider assigned": RiderAssigned,
	"rider-assigned": RiderAssigned,
	"in-transit":     InTransit,
	"in transit":     InTransit,
}

// ParseDeliveryStatus maps a wire value to a DeliveryStatus.
// Unrecognized values are reported as invalid arguments.
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for status, name := range deliveryStatusNames {
		if name == normalized {
			return status, nil
		}
	}
	if status, ok := deliveryStatusAliases[normalized]; ok {
		return status, nil
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a recognized delivery status", raw),
	)
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// next returns the single status a rider may move to from s.
func (s DeliveryStatus) next() (DeliveryStatus, bool) {
	switch s { //nolint:exhaustive // only rider-driven steps have a successor
	case RiderAssigned:
		return InTransit, true
	case InTransit:
		return Delivered, true
	default:
		return DeliveryUnknown, false
	}
}

// IsActive reports whether the parcel is with a rider and not yet delivered.
func (s DeliveryStatus) IsActive() bool {
	return s == RiderAssigned || s == InTransit
}

// ValidateAssign fails with a ConflictError unless the parcel is still waiting for a rider.
func (s DeliveryStatus) ValidateAssign() error {
	if s != NotDelivered {
		return errs.NewConflictErrorWithCause(
			"parcel is already assigned",
			fmt.Errorf("delivery status is %s", s),
		)
	}
	return nil
}

// Assign transitions not_delivered -> rider_assigned.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if err := s.ValidateAssign(); err != nil {
		return DeliveryUnknown, err
	}
	return RiderAssigned, nil
}

// Advance performs a rider-driven step. Only the immediate successor of s is
// accepted: rider_assigned -> in_transit -> delivered. Skips, repeats and
// backward moves are invalid arguments.
func (s DeliveryStatus) Advance(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return DeliveryUnknown, err
	}
	next, ok := s.next()
	if !ok || next != target {
		return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("cannot move from %s to %s", s, target),
		)
	}
	return next, nil
}
