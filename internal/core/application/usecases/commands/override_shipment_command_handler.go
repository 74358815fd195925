package commands

import (
	"context"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// OverrideShipmentCommandHandler stores a reviewer edit and returns the
// resulting effective shipment.
type OverrideShipmentCommandHandler struct {
	uowFactory BatchUoWFactory
}

func NewOverrideShipmentCommandHandler(uowFactory BatchUoWFactory) OverrideShipmentCommandHandler {
	return OverrideShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h OverrideShipmentCommandHandler) Handle(ctx context.Context, cmd OverrideShipmentCommand) (shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Shipment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Shipment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BatchRepository()
	b, err := repo.Get(ctx, cmd.BatchID())
	if err != nil {
		return shipment.Shipment{}, err
	}

	if err = b.SetOverride(cmd.Reference(), cmd.Override()); err != nil {
		return shipment.Shipment{}, err
	}

	if err = repo.SaveOverrides(ctx, b); err != nil {
		return shipment.Shipment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Shipment{}, err
	}

	return b.Shipment(cmd.Reference())
}
