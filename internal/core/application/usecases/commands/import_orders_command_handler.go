package commands

import (
	"context"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"go.uber.org/zap"
)

// ImportOrdersResult summarizes an import. BatchID is only set when the batch was stored.
type ImportOrdersResult struct {
	BatchID      kernel.UUID
	Shipments    int
	MergedGroups int
	Rejected     []*errs.RowIsMalformedError
	Failures     []services.ClassificationFailure
}

// ImportOrdersCommandHandler runs the pipeline over an export with the stored
// settings and persists the result as a batch.
//
// The import is all-or-nothing: any classification failure rejects the whole
// batch and nothing is written. Malformed rows are skipped and reported.
type ImportOrdersCommandHandler struct {
	uowFactory UoWFactory
	builder    services.BatchBuilder
	logger     *zap.Logger
}

func NewImportOrdersCommandHandler(
	uowFactory UoWFactory,
	builder services.BatchBuilder,
	logger *zap.Logger,
) ImportOrdersCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		builder:    builder,
		logger:     logger.With(zap.String("component", "import-orders")),
	}
}

// Handle returns a result even when the batch is rejected so callers can report
// rejected rows and failures; the error is then the plan error.
func (h ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (ImportOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shippingSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	plan, err := h.builder.Build(cmd.Records(), shippingSettings)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	result := ImportOrdersResult{
		Shipments: len(plan.Entries),
		Rejected:  plan.Rejected,
		Failures:  plan.Failures,
	}
	for _, e := range plan.Entries {
		if len(e.OrderIDs) > 1 {
			result.MergedGroups++
		}
	}
	for _, r := range plan.Rejected {
		h.logger.Warn("row skipped", zap.String("source", cmd.SourceName()), zap.Error(r))
	}
	for _, f := range plan.Failures {
		h.logger.Error("shipment not classified",
			zap.String("source", cmd.SourceName()),
			zap.String("reference", f.Reference),
			zap.Error(f.Cause))
	}

	if err = plan.Err(); err != nil {
		return result, err
	}

	b, err := batch.NewBatch(cmd.SourceName(), cmd.ReceivedAt(), plan.Entries)
	if err != nil {
		return result, err
	}

	if err = uow.BatchRepository().Add(ctx, b); err != nil {
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	result.BatchID = b.ID()
	h.logger.Info("batch imported",
		zap.String("batch", b.ID().String()),
		zap.String("source", cmd.SourceName()),
		zap.Int("shipments", result.Shipments),
		zap.Int("merged", result.MergedGroups),
		zap.Int("rejected", len(result.Rejected)))

	return result, nil
}
