package earningrepo

import (
	"context"

	"quickdrop/internal/adapters/out/postgres/pgerr"
	"quickdrop/internal/core/domain/model/earning"
	"quickdrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEarningRepository implements ports.EarningRepository using GORM.
type GormEarningRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEarningRepository(db *gorm.DB, tracker aggregateTracker) *GormEarningRepository {
	return &GormEarningRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an earning. A second earning for one parcel violates the
// unique parcel_id index and surfaces as a ConflictError.
func (r *GormEarningRepository) Add(ctx context.Context, aggregate *earning.Earning) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "earning")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
