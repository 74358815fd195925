package batch

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var (
	// ErrBatchIsNotConstructed is returned when using a Batch not built by NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")
	// ErrDuplicateReference is returned when two shipments share a reference.
	ErrDuplicateReference = errors.New("shipment reference is not unique")
)

// Entry is one consolidated shipment of a batch together with the order
// totals it was classified from.
type Entry struct {
	Shipment  shipment.Shipment
	OrderIDs  []string
	ItemCount int
	Value     kernel.Money
}

// Batch is the aggregate root for an imported order export.
//
// Business rules:
//   - at least one entry, shipment references unique
//   - shipments keep the pipeline order
//   - overrides can only target shipments of the batch and must validate
//   - applying an empty override removes the reviewer edit
type Batch struct {
	id         kernel.UUID
	sourceName string
	createdAt  time.Time
	entries    []Entry
	overrides  map[string]shipment.Override
	guard      guard.ConstructorGuard
}

// NewBatch creates a batch with a fresh identifier.
func NewBatch(sourceName string, createdAt time.Time, entries []Entry) (*Batch, error) {
	b := &Batch{
		id:         kernel.NewUUID(),
		sourceName: sourceName,
		createdAt:  createdAt.UTC(),
		entries:    cloneEntries(entries),
		overrides:  make(map[string]shipment.Override),
		guard:      guard.NewConstructorGuard(),
	}
	if err := b.validateEntries(); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreBatch rebuilds a batch from persistence without generating a new id.
func RestoreBatch(
	id kernel.UUID,
	sourceName string,
	createdAt time.Time,
	entries []Entry,
	overrides map[string]shipment.Override,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	b := &Batch{
		id:         id,
		sourceName: sourceName,
		createdAt:  createdAt.UTC(),
		entries:    cloneEntries(entries),
		overrides:  make(map[string]shipment.Override, len(overrides)),
		guard:      guard.NewConstructorGuard(),
	}
	if err := b.validateEntries(); err != nil {
		return nil, err
	}
	for reference, o := range overrides {
		if err := b.SetOverride(reference, o); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Validate checks that the batch was properly constructed.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

func (b *Batch) ID() kernel.UUID {
	return b.id
}

func (b *Batch) SourceName() string {
	return b.sourceName
}

func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// Entries returns the assembled entries without reviewer edits.
func (b *Batch) Entries() []Entry {
	return cloneEntries(b.entries)
}

// Shipments returns the assembled shipments without reviewer edits.
func (b *Batch) Shipments() []shipment.Shipment {
	result := make([]shipment.Shipment, 0, len(b.entries))
	for _, e := range b.entries {
		result = append(result, e.Shipment)
	}
	return result
}

// MergeMap maps every shipment reference to the order ids merged into it.
func (b *Batch) MergeMap() map[string][]string {
	result := make(map[string][]string, len(b.entries))
	for _, e := range b.entries {
		result[e.Shipment.Reference] = slices.Clone(e.OrderIDs)
	}
	return result
}

// OrderIDs returns the order ids merged into the shipment with reference.
func (b *Batch) OrderIDs(reference string) []string {
	if i, ok := b.indexOf(reference); ok {
		return slices.Clone(b.entries[i].OrderIDs)
	}
	return nil
}

// Overrides returns a copy of every recorded reviewer edit keyed by reference.
func (b *Batch) Overrides() map[string]shipment.Override {
	return maps.Clone(b.overrides)
}

// SetOverride records a reviewer edit, replacing any previous one.
//
// Returns:
//   - *errs.ObjectNotFoundError if reference is not part of the batch
//   - a validation error if the override carries unknown values or non-positive measurements
func (b *Batch) SetOverride(reference string, o shipment.Override) error {
	if _, ok := b.indexOf(reference); !ok {
		return errs.NewObjectNotFoundError("reference", reference)
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if o.IsEmpty() {
		delete(b.overrides, reference)
		return nil
	}
	b.overrides[reference] = o
	return nil
}

// Shipment returns the effective shipment for reference.
func (b *Batch) Shipment(reference string) (shipment.Shipment, error) {
	i, ok := b.indexOf(reference)
	if !ok {
		return shipment.Shipment{}, errs.NewObjectNotFoundError("reference", reference)
	}
	return b.effective(b.entries[i].Shipment), nil
}

// EffectiveShipments returns every shipment with its override applied, in pipeline order.
func (b *Batch) EffectiveShipments() []shipment.Shipment {
	result := make([]shipment.Shipment, 0, len(b.entries))
	for _, e := range b.entries {
		result = append(result, b.effective(e.Shipment))
	}
	return result
}

// EffectiveEntries is EffectiveShipments with the order totals attached.
func (b *Batch) EffectiveEntries() []Entry {
	result := cloneEntries(b.entries)
	for i := range result {
		result[i].Shipment = b.effective(result[i].Shipment)
	}
	return result
}

func (b *Batch) effective(s shipment.Shipment) shipment.Shipment {
	if o, ok := b.overrides[s.Reference]; ok {
		return s.WithOverride(o)
	}
	return s
}

func (b *Batch) indexOf(reference string) (int, bool) {
	i := slices.IndexFunc(b.entries, func(e Entry) bool {
		return e.Shipment.Reference == reference
	})
	return i, i >= 0
}

func (b *Batch) validateEntries() error {
	if len(b.entries) == 0 {
		return errs.NewValueIsRequiredError("entries")
	}

	seen := make(map[string]struct{}, len(b.entries))
	var result []error
	for _, e := range b.entries {
		s := e.Shipment
		if err := s.Validate(); err != nil {
			result = append(result, fmt.Errorf("shipment %q: %w", s.Reference, err))
		}
		if _, dup := seen[s.Reference]; dup {
			result = append(result, fmt.Errorf("%w: %q", ErrDuplicateReference, s.Reference))
		}
		if e.ItemCount < 0 {
			result = append(result, errs.NewValueIsOutOfRangeError("item count", e.ItemCount, 0, "unbounded"))
		}
		seen[s.Reference] = struct{}{}
	}
	return errors.Join(result...)
}

func cloneEntries(entries []Entry) []Entry {
	result := slices.Clone(entries)
	for i := range result {
		result[i].OrderIDs = slices.Clone(result[i].OrderIDs)
	}
	return result
}
