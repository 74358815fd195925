package cmd

import (
	"context"
	"fmt"

	httpadapter "github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/http"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/orderexport"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/exportstore"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/labelcsv"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/postgres"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/queries"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/ports"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	encoder    ports.LabelEncoder
	store      ports.ExportStore
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	store, err := newExportStore(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		encoder:    labelcsv.NewEncoder(),
		store:      store,
	}, nil
}

func newExportStore(ctx context.Context, config Config, logger *zap.Logger) (ports.ExportStore, error) {
	switch config.ExportBackend {
	case ExportBackendS3:
		return exportstore.NewS3Store(ctx, exportstore.S3Config{
			Bucket:       config.S3Bucket,
			Prefix:       config.S3Prefix,
			Region:       config.S3Region,
			Endpoint:     config.S3Endpoint,
			AccessKey:    config.S3AccessKey,
			SecretKey:    config.S3SecretKey,
			UsePathStyle: config.S3UsePathStyle,
		}, logger)
	case ExportBackendFS:
		return exportstore.NewFileStore(config.ExportDir)
	default:
		return nil, fmt.Errorf("unknown export backend %q", config.ExportBackend)
	}
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, services.NewBatchBuilder(), c.logger)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	return commands.NewUpdateSettingsCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateOverrideShipmentCommandHandler() commands.OverrideShipmentCommandHandler {
	return commands.NewOverrideShipmentCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateExportBatchCommandHandler() commands.ExportBatchCommandHandler {
	return commands.NewExportBatchCommandHandler(c.batchUoWFactory(), c.encoder, c.store, c.logger)
}

func (c *CompositionRoot) CreateExportReturnCommandHandler() commands.ExportReturnCommandHandler {
	return commands.NewExportReturnCommandHandler(c.batchUoWFactory(), c.encoder, c.store)
}

func (c *CompositionRoot) CreatePurgeExpiredBatchesCommandHandler() commands.PurgeExpiredBatchesCommandHandler {
	return commands.NewPurgeExpiredBatchesCommandHandler(c.batchUoWFactory())
}

// Queries read outside a transaction through a fresh unit of work.
func (c *CompositionRoot) CreateGetBatchShipmentsQueryHandler() queries.GetBatchShipmentsQueryHandler {
	return queries.NewGetBatchShipmentsQueryHandler(c.uowFactory.Create().BatchRepository())
}

func (c *CompositionRoot) CreateGetPackingManifestQueryHandler() queries.GetPackingManifestQueryHandler {
	return queries.NewGetPackingManifestQueryHandler(c.uowFactory.Create().BatchRepository())
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.uowFactory.Create().SettingsRepository())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(orderexport.NewReader(), httpadapter.Handlers{
		ImportOrders:       c.CreateImportOrdersCommandHandler(),
		OverrideShipment:   c.CreateOverrideShipmentCommandHandler(),
		ExportBatch:        c.CreateExportBatchCommandHandler(),
		ExportReturn:       c.CreateExportReturnCommandHandler(),
		UpdateSettings:     c.CreateUpdateSettingsCommandHandler(),
		GetBatchShipments:  c.CreateGetBatchShipmentsQueryHandler(),
		GetPackingManifest: c.CreateGetPackingManifestQueryHandler(),
		GetSettings:        c.CreateGetSettingsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewBatchRetentionJob(
			c.CreatePurgeExpiredBatchesCommandHandler(),
			c.config.RetentionSchedule,
			c.config.RetentionMaxAge,
			c.logger,
		),
	)
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
