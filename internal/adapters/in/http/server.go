// Package http exposes the batch use cases over a JSON API described by the
// embedded OpenAPI document.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/queries"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type (
	// OrderExportReader decodes an uploaded export file.
	OrderExportReader interface {
		Read(r io.Reader) ([]order.Record, error)
	}

	ImportOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.ImportOrdersCommand) (commands.ImportOrdersResult, error)
	}
	OverrideShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.OverrideShipmentCommand) (shipment.Shipment, error)
	}
	ExportBatchHandler interface {
		Handle(ctx context.Context, cmd commands.ExportBatchCommand) ([]commands.ExportedFile, error)
	}
	ExportReturnHandler interface {
		Handle(ctx context.Context, cmd commands.ExportReturnCommand) (commands.ExportedFile, error)
	}
	UpdateSettingsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateSettingsCommand) error
	}
	GetBatchShipmentsHandler interface {
		Handle(ctx context.Context, query queries.GetBatchShipmentsQuery) (queries.GetBatchShipmentsResponse, error)
	}
	GetPackingManifestHandler interface {
		Handle(ctx context.Context, query queries.GetPackingManifestQuery) ([]services.ManifestRow, error)
	}
	GetSettingsHandler interface {
		Handle(ctx context.Context, query queries.GetSettingsQuery) (queries.GetSettingsResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	ImportOrders       ImportOrdersHandler
	OverrideShipment   OverrideShipmentHandler
	ExportBatch        ExportBatchHandler
	ExportReturn       ExportReturnHandler
	UpdateSettings     UpdateSettingsHandler
	GetBatchShipments  GetBatchShipmentsHandler
	GetPackingManifest GetPackingManifestHandler
	GetSettings        GetSettingsHandler
}

// Server implements ServerInterface.
type Server struct {
	exports  OrderExportReader
	handlers Handlers
	logger   *zap.Logger
	now      func() time.Time
}

func NewServer(exports OrderExportReader, handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		exports:  exports,
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
		now:      time.Now,
	}
}

// ImportBatch handles POST /api/v1/batches.
func (s *Server) ImportBatch(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "multipart field \"file\" is required")
	}

	f, err := file.Open()
	if err != nil {
		return badRequest(ctx, "uploaded file cannot be read")
	}
	defer f.Close()

	records, err := s.exports.Read(f)
	if err != nil {
		return badRequest(ctx, "Invalid order export: "+err.Error())
	}

	cmd, err := commands.NewImportOrdersCommand(filepath.Base(file.Filename), records, s.now())
	if err != nil {
		return badRequest(ctx, "Invalid order export: "+err.Error())
	}

	result, err := s.handlers.ImportOrders.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrBatchIsIncomplete) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:         http.StatusUnprocessableEntity,
			Message:      "Some shipments could not be classified; no batch was stored",
			RejectedRows: rejectedRows(result.Rejected),
			Failures:     failures(result.Failures),
		})
	}
	if err != nil {
		return s.respondError(ctx, err, "Failed to import orders")
	}

	return ctx.JSON(http.StatusCreated, importResult(result))
}

// GetBatchShipments handles GET /api/v1/batches/{batchId}/shipments.
func (s *Server) GetBatchShipments(ctx echo.Context, batchID string, params GetBatchShipmentsParams) error {
	id, err := kernel.UUIDFromString(batchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var size shipment.LabelSize
	if params.LabelSize != nil {
		size = shipment.LabelSize(*params.LabelSize)
	}
	view := queries.OutboundView
	if params.View != nil {
		view = queries.View(*params.View)
	}

	query, err := queries.NewGetBatchShipmentsQuery(id, size, view)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetBatchShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve shipments")
	}

	return ctx.JSON(http.StatusOK, batchShipments(response))
}

// OverrideShipment handles PATCH /api/v1/batches/{batchId}/shipments/{reference}.
func (s *Server) OverrideShipment(ctx echo.Context, batchID string, reference string) error {
	id, err := kernel.UUIDFromString(batchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var body Override
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := body.toDomain()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewOverrideShipmentCommand(id, reference, o)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	effective, err := s.handlers.OverrideShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to override shipment")
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(effective))
}

// ExportReturn handles POST /api/v1/batches/{batchId}/shipments/{reference}/return-export.
func (s *Server) ExportReturn(ctx echo.Context, batchID string, reference string) error {
	id, err := kernel.UUIDFromString(batchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	cmd, err := commands.NewExportReturnCommand(id, reference, s.now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	file, err := s.handlers.ExportReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to export return label")
	}

	return ctx.JSON(http.StatusCreated, exportedFile(file))
}

// GetPackingManifest handles GET /api/v1/batches/{batchId}/manifest.
func (s *Server) GetPackingManifest(ctx echo.Context, batchID string) error {
	id, err := kernel.UUIDFromString(batchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	query, err := queries.NewGetPackingManifestQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.handlers.GetPackingManifest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to build manifest")
	}

	return ctx.JSON(http.StatusOK, manifest(rows))
}

// ExportBatch handles POST /api/v1/batches/{batchId}/exports.
func (s *Server) ExportBatch(ctx echo.Context, batchID string) error {
	id, err := kernel.UUIDFromString(batchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	cmd, err := commands.NewExportBatchCommand(id, s.now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	files, err := s.handlers.ExportBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to export batch")
	}

	response := ExportedFiles{Files: make([]ExportedFile, 0, len(files))}
	for _, f := range files {
		response.Files = append(response.Files, exportedFile(f))
	}
	return ctx.JSON(http.StatusCreated, response)
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	response, err := s.handlers.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve settings")
	}

	return ctx.JSON(http.StatusOK, SettingsView{
		Stored:    settingsFromDomain(response.Stored),
		Effective: settingsFromDomain(response.Effective),
	})
}

// UpdateSettings handles PUT /api/v1/settings.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var body Settings
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateSettingsCommand(body.toDomain())
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid settings: %s", err))
	}

	if err := s.handlers.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to save settings")
	}

	return ctx.NoContent(http.StatusNoContent)
}
