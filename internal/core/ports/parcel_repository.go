// Package ports defines the contracts between the core and its adapters:
// one repository per stored collection, the unit of work that binds them to a
// transaction, and the outbound services (identity provider, payment
// processor, event broker, role cache).
package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
)

// ParcelRepository persists parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update writes the parcel back only if the stored version still equals
	// aggregate.Version(). A stale version yields a ConflictError, a missing
	// row an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get loads a parcel by id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel. Deleting a missing parcel is an ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
