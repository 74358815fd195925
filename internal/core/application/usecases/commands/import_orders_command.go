package commands

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportOrdersCommand represents an uploaded marketplace export to be turned into a batch.
//
// Example:
//
//	records, _ := orderexport.NewReader().Read(file)
//	cmd, err := NewImportOrdersCommand("TCGplayer_ShippingExport.csv", records, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid import: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	sourceName string
	records    []order.Record
	receivedAt time.Time

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand validates that the export has a name, at least one row
// and a receive time.
func NewImportOrdersCommand(sourceName string, records []order.Record, receivedAt time.Time) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSourceName(sourceName),
		cmd.setRecords(records),
		cmd.setReceivedAt(receivedAt),
	); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

func (c ImportOrdersCommand) SourceName() string {
	return c.sourceName
}

func (c ImportOrdersCommand) Records() []order.Record {
	return slices.Clone(c.records)
}

func (c ImportOrdersCommand) ReceivedAt() time.Time {
	return c.receivedAt
}

func (c *ImportOrdersCommand) setSourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("source name")
	}

	c.sourceName = name
	return nil
}

func (c *ImportOrdersCommand) setRecords(records []order.Record) error {
	if len(records) == 0 {
		return errs.NewValueIsRequiredError("records")
	}

	c.records = slices.Clone(records)
	return nil
}

func (c *ImportOrdersCommand) setReceivedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("received at")
	}

	c.receivedAt = at
	return nil
}
