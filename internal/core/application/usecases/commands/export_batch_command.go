package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

// File name prefixes of exported label files.
const (
	LabelsPrefix = "labels"
	ReturnPrefix = "return"
)

var (
	ErrExportBatchCommandIsNotConstructed = errors.New(
		"ExportBatchCommand must be created via NewExportBatchCommand constructor",
	)
	ErrExportReturnCommandIsNotConstructed = errors.New(
		"ExportReturnCommand must be created via NewExportReturnCommand constructor",
	)
)

// ExportBatchCommand writes one label file per label size of a batch.
type ExportBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	exportedAt time.Time

	guard guard.ConstructorGuard
}

func NewExportBatchCommand(batchID kernel.UUID, exportedAt time.Time) (ExportBatchCommand, error) {
	if err := errors.Join(batchID.Validate(), requireTime("exported at", exportedAt)); err != nil {
		return ExportBatchCommand{}, err
	}

	return ExportBatchCommand{
		batchID:    batchID,
		exportedAt: exportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportBatchCommand) Validate() error {
	return c.guard.Validate(ErrExportBatchCommandIsNotConstructed)
}

func (c ExportBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c ExportBatchCommand) ExportedAt() time.Time {
	return c.exportedAt
}

// ExportReturnCommand writes a single return label file for one shipment.
type ExportReturnCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	reference  string
	exportedAt time.Time

	guard guard.ConstructorGuard
}

func NewExportReturnCommand(batchID kernel.UUID, reference string, exportedAt time.Time) (ExportReturnCommand, error) {
	var referenceErr error
	if strings.TrimSpace(reference) == "" {
		referenceErr = errs.NewValueIsRequiredError("reference")
	}

	if err := errors.Join(batchID.Validate(), referenceErr, requireTime("exported at", exportedAt)); err != nil {
		return ExportReturnCommand{}, err
	}

	return ExportReturnCommand{
		batchID:    batchID,
		reference:  reference,
		exportedAt: exportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportReturnCommand) Validate() error {
	return c.guard.Validate(ErrExportReturnCommandIsNotConstructed)
}

func (c ExportReturnCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c ExportReturnCommand) Reference() string {
	return c.reference
}

func (c ExportReturnCommand) ExportedAt() time.Time {
	return c.exportedAt
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
