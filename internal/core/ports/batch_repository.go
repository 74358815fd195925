// Package ports defines the contracts between the shipment domain and infrastructure:
// persistence of batches and settings, the label file encoder and the export store.
package ports

import (
	"context"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
type BatchRepository interface {
	// Add persists a new batch with all its entries.
	Add(ctx context.Context, b *batch.Batch) error

	// Get retrieves a batch with its entries in pipeline order and its overrides.
	// Returns *errs.ObjectNotFoundError when no batch has the id.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// SaveOverrides replaces the stored reviewer overrides of an existing batch
	// with the ones currently held by the aggregate. Assembled shipments are not written.
	SaveOverrides(ctx context.Context, b *batch.Batch) error

	// DeleteCreatedBefore removes batches created strictly before cutoff and
	// returns how many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
