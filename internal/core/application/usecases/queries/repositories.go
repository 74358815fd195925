// Package queries contains read operations for retrieving system state.
// Queries return read models for specific use cases and never modify state.
package queries

import (
	"context"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
)

type (
	// BatchReader loads batches for read models.
	BatchReader interface {
		Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
	}

	// SettingsReader loads the stored shipping settings.
	SettingsReader interface {
		Get(ctx context.Context) (settings.ShippingSettings, error)
	}
)
