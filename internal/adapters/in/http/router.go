package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetBatchShipmentsParams are the query parameters of GET .../shipments.
type GetBatchShipmentsParams struct {
	LabelSize *string
	View      *string
}

// ServerInterface lists one method per operation of the API document.
type ServerInterface interface {
	// (POST /api/v1/batches)
	ImportBatch(ctx echo.Context) error
	// (GET /api/v1/batches/{batchId}/shipments)
	GetBatchShipments(ctx echo.Context, batchID string, params GetBatchShipmentsParams) error
	// (PATCH /api/v1/batches/{batchId}/shipments/{reference})
	OverrideShipment(ctx echo.Context, batchID string, reference string) error
	// (POST /api/v1/batches/{batchId}/shipments/{reference}/return-export)
	ExportReturn(ctx echo.Context, batchID string, reference string) error
	// (GET /api/v1/batches/{batchId}/manifest)
	GetPackingManifest(ctx echo.Context, batchID string) error
	// (POST /api/v1/batches/{batchId}/exports)
	ExportBatch(ctx echo.Context, batchID string) error
	// (GET /api/v1/settings)
	GetSettings(ctx echo.Context) error
	// (PUT /api/v1/settings)
	UpdateSettings(ctx echo.Context) error
}

// serverInterfaceWrapper binds path and query parameters before calling the server.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w *serverInterfaceWrapper) ImportBatch(ctx echo.Context) error {
	return w.handler.ImportBatch(ctx)
}

func (w *serverInterfaceWrapper) GetBatchShipments(ctx echo.Context) error {
	batchID, err := bindPath(ctx, "batchId")
	if err != nil {
		return err
	}

	var params GetBatchShipmentsParams
	if err := runtime.BindQueryParameter("form", true, false, "labelSize", ctx.QueryParams(), &params.LabelSize); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter labelSize: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "view", ctx.QueryParams(), &params.View); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter view: %s", err))
	}

	return w.handler.GetBatchShipments(ctx, batchID, params)
}

func (w *serverInterfaceWrapper) OverrideShipment(ctx echo.Context) error {
	batchID, reference, err := bindBatchAndReference(ctx)
	if err != nil {
		return err
	}
	return w.handler.OverrideShipment(ctx, batchID, reference)
}

func (w *serverInterfaceWrapper) ExportReturn(ctx echo.Context) error {
	batchID, reference, err := bindBatchAndReference(ctx)
	if err != nil {
		return err
	}
	return w.handler.ExportReturn(ctx, batchID, reference)
}

func (w *serverInterfaceWrapper) GetPackingManifest(ctx echo.Context) error {
	batchID, err := bindPath(ctx, "batchId")
	if err != nil {
		return err
	}
	return w.handler.GetPackingManifest(ctx, batchID)
}

func (w *serverInterfaceWrapper) ExportBatch(ctx echo.Context) error {
	batchID, err := bindPath(ctx, "batchId")
	if err != nil {
		return err
	}
	return w.handler.ExportBatch(ctx, batchID)
}

func (w *serverInterfaceWrapper) GetSettings(ctx echo.Context) error {
	return w.handler.GetSettings(ctx)
}

func (w *serverInterfaceWrapper) UpdateSettings(ctx echo.Context) error {
	return w.handler.UpdateSettings(ctx)
}

func bindPath(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &value)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

func bindBatchAndReference(ctx echo.Context) (string, string, error) {
	batchID, err := bindPath(ctx, "batchId")
	if err != nil {
		return "", "", err
	}
	reference, err := bindPath(ctx, "reference")
	if err != nil {
		return "", "", err
	}
	return batchID, reference, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &serverInterfaceWrapper{handler: si}

	router.POST(baseURL+"/api/v1/batches", w.ImportBatch)
	router.GET(baseURL+"/api/v1/batches/:batchId/shipments", w.GetBatchShipments)
	router.PATCH(baseURL+"/api/v1/batches/:batchId/shipments/:reference", w.OverrideShipment)
	router.POST(baseURL+"/api/v1/batches/:batchId/shipments/:reference/return-export", w.ExportReturn)
	router.GET(baseURL+"/api/v1/batches/:batchId/manifest", w.GetPackingManifest)
	router.POST(baseURL+"/api/v1/batches/:batchId/exports", w.ExportBatch)
	router.GET(baseURL+"/api/v1/settings", w.GetSettings)
	router.PUT(baseURL+"/api/v1/settings", w.UpdateSettings)
}
