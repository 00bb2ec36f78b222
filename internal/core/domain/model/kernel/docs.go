// Package kernel provides the shared value objects of the parcel domain.
//
// The package includes:
//   - UUID: document identifiers; malformed input is reported as an invalid value
//   - Email: normalized, validated mailbox addresses identifying users, senders and riders
//   - Money: positive amounts kept in minor currency units
//
// All three are immutable and their zero values fail Validate, so an aggregate
// holding one can tell "never set" apart from a real value.
package kernel
