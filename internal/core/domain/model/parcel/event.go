package parcel

import (
	"time"

	"quickdrop/internal/core/domain/model/kernel"
)

// EventType names a parcel state change. The value doubles as the routing key
// when events are published.
type EventType string

const (
	EventCreated   EventType = "parcel.created"
	EventPaid      EventType = "parcel.paid"
	EventAssigned  EventType = "parcel.assigned"
	EventInTransit EventType = "parcel.in_transit"
	EventDelivered EventType = "parcel.delivered"
	EventCashedOut EventType = "parcel.cashed_out"
)

// Event is a snapshot of the parcel taken right after a state change.
type Event struct {
	Type           EventType
	ParcelID       kernel.UUID
	TrackingID     string
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	RiderEmail     string
	OccurredAt     time.Time
}

func (p *Parcel) record(eventType EventType, at time.Time) {
	rider := ""
	if !p.riderEmail.IsZero() {
		rider = p.riderEmail.String()
	}
	p.events = append(p.events, Event{
		Type:           eventType,
		ParcelID:       p.id,
		TrackingID:     p.trackingID,
		PaymentStatus:  p.paymentStatus,
		DeliveryStatus: p.deliveryStatus,
		RiderEmail:     rider,
		OccurredAt:     at,
	})
}

// Events returns the changes recorded since the parcel was built or restored.
func (p *Parcel) Events() []Event {
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// ClearEvents drops recorded events once they have been handed off.
func (p *Parcel) ClearEvents() {
	p.events = nil
}
