package commands

import (
	"context"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/ports"

	"go.uber.org/zap"
)

// ExportedFile describes one stored label file.
type ExportedFile struct {
	LabelSize shipment.LabelSize
	Name      string
	Location  string
	Shipments int
}

// ExportBatchCommandHandler writes the label files of a batch, overrides applied.
// Label sizes without shipments produce no file.
type ExportBatchCommandHandler struct {
	uowFactory  BatchUoWFactory
	encoder     ports.LabelEncoder
	store       ports.ExportStore
	partitioner services.ExportPartitioner
	logger      *zap.Logger
}

func NewExportBatchCommandHandler(
	uowFactory BatchUoWFactory,
	encoder ports.LabelEncoder,
	store ports.ExportStore,
	logger *zap.Logger,
) ExportBatchCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ExportBatchCommandHandler{
		uowFactory:  uowFactory,
		encoder:     encoder,
		store:       store,
		partitioner: services.NewExportPartitioner(),
		logger:      logger.With(zap.String("component", "export-batch")),
	}
}

func (h ExportBatchCommandHandler) Handle(ctx context.Context, cmd ExportBatchCommand) ([]ExportedFile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := loadBatch(ctx, h.uowFactory, cmd.BatchID())
	if err != nil {
		return nil, err
	}

	var files []ExportedFile
	for _, part := range h.partitioner.PartitionAll(b.EffectiveShipments()) {
		file, err := storeLabels(ctx, h.encoder, h.store, LabelsPrefix, part.LabelSize, part.Shipments, cmd.ExportedAt())
		if err != nil {
			return files, err
		}
		h.logger.Info("label file exported",
			zap.String("batch", b.ID().String()),
			zap.String("labelSize", string(file.LabelSize)),
			zap.String("location", file.Location),
			zap.Int("shipments", file.Shipments))
		files = append(files, file)
	}

	return files, nil
}

// ExportReturnCommandHandler writes a return label file for one shipment:
// the effective shipment with origin and destination swapped.
type ExportReturnCommandHandler struct {
	uowFactory BatchUoWFactory
	encoder    ports.LabelEncoder
	store      ports.ExportStore
}

func NewExportReturnCommandHandler(
	uowFactory BatchUoWFactory,
	encoder ports.LabelEncoder,
	store ports.ExportStore,
) ExportReturnCommandHandler {
	return ExportReturnCommandHandler{
		uowFactory: uowFactory,
		encoder:    encoder,
		store:      store,
	}
}

func (h ExportReturnCommandHandler) Handle(ctx context.Context, cmd ExportReturnCommand) (ExportedFile, error) {
	if err := cmd.Validate(); err != nil {
		return ExportedFile{}, err
	}

	b, err := loadBatch(ctx, h.uowFactory, cmd.BatchID())
	if err != nil {
		return ExportedFile{}, err
	}

	s, err := b.Shipment(cmd.Reference())
	if err != nil {
		return ExportedFile{}, err
	}

	return storeLabels(ctx, h.encoder, h.store, ReturnPrefix, s.Options.LabelSize,
		[]shipment.Shipment{s.Swapped()}, cmd.ExportedAt())
}

func loadBatch(ctx context.Context, factory BatchUoWFactory, id kernel.UUID) (*batch.Batch, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.BatchRepository().Get(ctx, id)
}

func storeLabels(
	ctx context.Context,
	encoder ports.LabelEncoder,
	store ports.ExportStore,
	prefix string,
	size shipment.LabelSize,
	shipments []shipment.Shipment,
	at time.Time,
) (ExportedFile, error) {
	data, err := encoder.Encode(shipments)
	if err != nil {
		return ExportedFile{}, err
	}

	name := encoder.FileName(prefix, size, at)
	location, err := store.Put(ctx, name, encoder.ContentType(), data)
	if err != nil {
		return ExportedFile{}, err
	}

	return ExportedFile{
		LabelSize: size,
		Name:      name,
		Location:  location,
		Shipments: len(shipments),
	}, nil
}
