// Package settingsrepo persists the single shipping settings document as JSONB.
package settingsrepo

import (
	"encoding/json"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
)

// documentID is the primary key of the only settings row.
const documentID = 1

// SettingsDTO is the shipping_settings row.
type SettingsDTO struct {
	ID        int16     `gorm:"type:smallint;primaryKey"`
	Document  string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (SettingsDTO) TableName() string {
	return "shipping_settings"
}

func fromDomain(s settings.ShippingSettings, at time.Time) (SettingsDTO, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return SettingsDTO{}, err
	}
	return SettingsDTO{
		ID:        documentID,
		Document:  string(doc),
		UpdatedAt: at.UTC(),
	}, nil
}

func toDomain(dto SettingsDTO) (settings.ShippingSettings, error) {
	var s settings.ShippingSettings
	if err := json.Unmarshal([]byte(dto.Document), &s); err != nil {
		return settings.ShippingSettings{}, err
	}
	return s, nil
}
