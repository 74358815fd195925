package queries

import (
	"errors"
	"fmt"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrGetBatchShipmentsQueryIsNotConstructed = errors.New(
	"GetBatchShipmentsQuery must be created via NewGetBatchShipmentsQuery constructor",
)

// View selects which side of a shipment is shown.
type View string

const (
	// OutboundView shows shipments as they go to buyers.
	OutboundView View = ""
	// ReturnView shows shipments with origin and destination swapped.
	ReturnView View = "return"
)

// GetBatchShipmentsQuery reads the effective shipments of a batch, optionally
// restricted to one label size and optionally in the return view.
//
// Example:
//
//	query, _ := NewGetBatchShipmentsQuery(batchID, shipment.LabelSize4x6, ReturnView)
//	response, err := handler.Handle(ctx, query)
type GetBatchShipmentsQuery struct {
	batchID   kernel.UUID
	labelSize shipment.LabelSize
	view      View

	guard guard.ConstructorGuard
}

// NewGetBatchShipmentsQuery accepts an empty labelSize for every size.
func NewGetBatchShipmentsQuery(batchID kernel.UUID, labelSize shipment.LabelSize, view View) (GetBatchShipmentsQuery, error) {
	var sizeErr, viewErr error
	if labelSize != "" {
		sizeErr = labelSize.Validate()
	}
	if view != OutboundView && view != ReturnView {
		viewErr = errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("%q is not a known view", view))
	}

	if err := errors.Join(batchID.Validate(), sizeErr, viewErr); err != nil {
		return GetBatchShipmentsQuery{}, err
	}

	return GetBatchShipmentsQuery{
		batchID:   batchID,
		labelSize: labelSize,
		view:      view,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchShipmentsQueryIsNotConstructed)
}

func (q GetBatchShipmentsQuery) BatchID() kernel.UUID {
	return q.batchID
}

func (q GetBatchShipmentsQuery) LabelSize() shipment.LabelSize {
	return q.labelSize
}

func (q GetBatchShipmentsQuery) View() View {
	return q.view
}
