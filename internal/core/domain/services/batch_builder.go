package services

import (
	"errors"
	"fmt"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

var (
	// ErrClassificationFailed wraps every per-shipment classification failure.
	ErrClassificationFailed = errors.New("shipment could not be classified")
	// ErrBatchIsIncomplete is returned for plans that cannot be persisted or exported.
	ErrBatchIsIncomplete = errors.New("batch is incomplete")
)

// ClassificationFailure records a consolidated order that could not become a shipment.
type ClassificationFailure struct {
	Reference string
	OrderIDs  []string
	Cause     error
}

func (f ClassificationFailure) Error() string {
	return fmt.Sprintf("%s: reference %q: %v", ErrClassificationFailed, f.Reference, f.Cause)
}

func (f ClassificationFailure) Unwrap() []error {
	return []error{ErrClassificationFailed, f.Cause}
}

// BatchPlan is the outcome of running the pipeline over one export.
type BatchPlan struct {
	Entries  []batch.Entry
	Rejected []*errs.RowIsMalformedError
	Failures []ClassificationFailure
}

// Err reports why the plan cannot be used: every classification failure
// joined under ErrBatchIsIncomplete, or a required error when nothing was classified.
func (p BatchPlan) Err() error {
	if len(p.Failures) > 0 {
		result := []error{ErrBatchIsIncomplete}
		for _, f := range p.Failures {
			result = append(result, f)
		}
		return errors.Join(result...)
	}
	if len(p.Entries) == 0 {
		return errors.Join(ErrBatchIsIncomplete, errs.NewValueIsRequiredError("orders"))
	}
	return nil
}

// Shipments returns the assembled shipments in consolidation order.
func (p BatchPlan) Shipments() []shipment.Shipment {
	result := make([]shipment.Shipment, 0, len(p.Entries))
	for _, e := range p.Entries {
		result = append(result, e.Shipment)
	}
	return result
}

// BatchBuilder runs normalizer, merger and assembler over one settings snapshot.
//
// Malformed rows are skipped and listed in Rejected. Classification failures
// do not stop the run: every shipment is attempted so that all failures are
// reported together, and the resulting plan is then unusable as a whole.
type BatchBuilder struct {
	normalizer RecordNormalizer
	merger     OrderMerger
	assembler  ShipmentAssembler
}

func NewBatchBuilder() BatchBuilder {
	return BatchBuilder{
		normalizer: NewRecordNormalizer(),
		merger:     NewOrderMerger(),
		assembler:  NewShipmentAssembler(),
	}
}

func (b BatchBuilder) Build(records []order.Record, s settings.ShippingSettings) (BatchPlan, error) {
	orders, rejected := b.normalizer.NormalizeAll(records)

	consolidated, mergeMap, err := b.merger.Merge(orders)
	if err != nil {
		return BatchPlan{}, err
	}

	plan := BatchPlan{
		Entries:  make([]batch.Entry, 0, len(consolidated)),
		Rejected: rejected,
	}
	for _, c := range consolidated {
		sh, err := b.assembler.Assemble(c, s)
		if err != nil {
			plan.Failures = append(plan.Failures, ClassificationFailure{
				Reference: c.Reference(),
				OrderIDs:  mergeMap[c.Reference()],
				Cause:     err,
			})
			continue
		}
		plan.Entries = append(plan.Entries, batch.Entry{
			Shipment:  sh,
			OrderIDs:  mergeMap[c.Reference()],
			ItemCount: c.ItemCount(),
			Value:     c.Value(),
		})
	}

	return plan, nil
}
