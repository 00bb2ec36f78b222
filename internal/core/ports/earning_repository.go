package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/earning"
)

// EarningRepository appends to the rider earnings ledger.
type EarningRepository interface {
	// Add persists an earning. A second earning for the same parcel is a ConflictError.
	Add(ctx context.Context, aggregate *earning.Earning) error
}
