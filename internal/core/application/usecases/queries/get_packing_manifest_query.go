package queries

import (
	"context"
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrGetPackingManifestQueryIsNotConstructed = errors.New(
	"GetPackingManifestQuery must be created via NewGetPackingManifestQuery constructor",
)

// GetPackingManifestQuery reads the sorted pull sheet of a batch.
type GetPackingManifestQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPackingManifestQuery(batchID kernel.UUID) (GetPackingManifestQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetPackingManifestQuery{}, err
	}

	return GetPackingManifestQuery{
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackingManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingManifestQueryIsNotConstructed)
}

func (q GetPackingManifestQuery) BatchID() kernel.UUID {
	return q.batchID
}

// GetPackingManifestQueryHandler builds the manifest from effective entries,
// so reviewer edits to package type show up on the pull sheet.
type GetPackingManifestQueryHandler struct {
	batches  BatchReader
	manifest services.PackingManifestBuilder
}

func NewGetPackingManifestQueryHandler(batches BatchReader) GetPackingManifestQueryHandler {
	return GetPackingManifestQueryHandler{
		batches:  batches,
		manifest: services.NewPackingManifestBuilder(),
	}
}

func (h GetPackingManifestQueryHandler) Handle(
	ctx context.Context,
	query GetPackingManifestQuery,
) ([]services.ManifestRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	b, err := h.batches.Get(ctx, query.BatchID())
	if err != nil {
		return nil, err
	}

	return h.manifest.Build(b.EffectiveEntries()), nil
}
