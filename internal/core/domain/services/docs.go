// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - ParcelDispatcher: hands a paid, waiting parcel to an active rider and
//     updates both sides of the assignment
package services
