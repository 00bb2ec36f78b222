// Package parcel provides the Parcel aggregate and its two status machines.
//
// Payment status moves once, unpaid -> paid, and records the processor's
// transaction id. Delivery status only moves forward:
//
//	not_delivered -> rider_assigned -> in_transit -> delivered
//
// The first step is taken by dispatch, the remaining two by the assigned rider,
// one step at a time. in_transit and delivered stamp transit_at and delivered_at.
// A delivered parcel may be cashed out exactly once by its rider.
//
// Every state change appends an Event; the unit of work publishes them after
// the enclosing transaction commits.
package parcel
