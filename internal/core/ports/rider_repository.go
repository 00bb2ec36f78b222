package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/rider"
)

// RiderRepository persists rider aggregates. Update is guarded by the same
// version check as parcels.
type RiderRepository interface {
	// Add persists a new rider. One application per email; a second is a ConflictError.
	Add(ctx context.Context, aggregate *rider.Rider) error

	Update(ctx context.Context, aggregate *rider.Rider) error

	// UpdateWorkStatus overwrites only the work status, whatever the stored version.
	UpdateWorkStatus(ctx context.Context, aggregate *rider.Rider) error

	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
