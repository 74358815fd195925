package settingsrepo

import (
	"context"
	"errors"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{
		db:  db,
		now: time.Now,
	}
}

// Get returns the stored settings, or settings.Default() before the first save.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.ShippingSettings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Default(), nil
		}
		return settings.ShippingSettings{}, err
	}

	return toDomain(dto)
}

// Save upserts the settings document.
func (r *GormSettingsRepository) Save(ctx context.Context, s settings.ShippingSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(s, r.now())
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&dto).Error
}
