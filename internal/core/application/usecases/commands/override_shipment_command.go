package commands

import (
	"errors"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrOverrideShipmentCommandIsNotConstructed = errors.New(
	"OverrideShipmentCommand must be created via NewOverrideShipmentCommand constructor",
)

// OverrideShipmentCommand records a reviewer edit on one shipment of a batch.
// An empty override clears any previous edit.
type OverrideShipmentCommand struct { //nolint:recvcheck //using for validation
	batchID   kernel.UUID
	reference string
	override  shipment.Override

	guard guard.ConstructorGuard
}

func NewOverrideShipmentCommand(
	batchID kernel.UUID,
	reference string,
	override shipment.Override,
) (OverrideShipmentCommand, error) {
	cmd := OverrideShipmentCommand{
		override: override,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setReference(reference),
		override.Validate(),
	); err != nil {
		return OverrideShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideShipmentCommand) Validate() error {
	return c.guard.Validate(ErrOverrideShipmentCommandIsNotConstructed)
}

func (c OverrideShipmentCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c OverrideShipmentCommand) Reference() string {
	return c.reference
}

func (c OverrideShipmentCommand) Override() shipment.Override {
	return c.override
}

func (c *OverrideShipmentCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *OverrideShipmentCommand) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("reference")
	}

	c.reference = reference
	return nil
}
