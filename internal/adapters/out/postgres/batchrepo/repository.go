package batchrepo

import (
	"context"
	"errors"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements ports.BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch with all its shipments.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID with shipments in pipeline order.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.db.WithContext(ctx).
		Preload("Shipments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SaveOverrides writes the override columns of every shipment of the batch.
func (r *GormBatchRepository) SaveOverrides(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	overrides := aggregate.Overrides()
	db := r.db.WithContext(ctx)

	var found int64
	if err := db.Model(&BatchDTO{}).Where("id = ?", id).Count(&found).Error; err != nil {
		return err
	}
	if found == 0 {
		return errs.NewObjectNotFoundError("batch", aggregate.ID().String())
	}

	for _, e := range aggregate.Entries() {
		reference := e.Shipment.Reference
		result := db.Model(&ShipmentDTO{}).
			Where("batch_id = ? AND reference = ?", id, reference).
			Updates(overrideFromDomain(overrides[reference]).columns())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("shipment", reference)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// DeleteCreatedBefore removes batches created before cutoff. Shipments go
// with them through the foreign key cascade.
func (r *GormBatchRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff.UTC()).Delete(&BatchDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
