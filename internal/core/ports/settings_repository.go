package ports

import (
	"context"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
)

// SettingsRepository stores the single shipping settings document.
type SettingsRepository interface {
	// Get returns the stored settings exactly as saved, or settings.Default()
	// when nothing was saved yet.
	Get(ctx context.Context) (settings.ShippingSettings, error)

	// Save replaces the stored settings. Numeric strings are kept unparsed.
	Save(ctx context.Context, s settings.ShippingSettings) error
}
