package queries

import (
	"context"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
)

// BatchShipment is one effective shipment with its merge and edit state.
type BatchShipment struct {
	Shipment   shipment.Shipment
	OrderIDs   []string
	Overridden bool
}

type GetBatchShipmentsResponse struct {
	BatchID    kernel.UUID
	SourceName string
	CreatedAt  time.Time
	Shipments  []BatchShipment
}

// GetBatchShipmentsQueryHandler reads batch shipments with overrides applied.
type GetBatchShipmentsQueryHandler struct {
	batches     BatchReader
	partitioner services.ExportPartitioner
}

func NewGetBatchShipmentsQueryHandler(batches BatchReader) GetBatchShipmentsQueryHandler {
	return GetBatchShipmentsQueryHandler{
		batches:     batches,
		partitioner: services.NewExportPartitioner(),
	}
}

func (h GetBatchShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetBatchShipmentsQuery,
) (GetBatchShipmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchShipmentsResponse{}, err
	}

	b, err := h.batches.Get(ctx, query.BatchID())
	if err != nil {
		return GetBatchShipmentsResponse{}, err
	}

	shipments := b.EffectiveShipments()
	switch {
	case query.View() == ReturnView && query.LabelSize() != "":
		shipments = h.partitioner.Returns(shipments, query.LabelSize())
	case query.View() == ReturnView:
		for i := range shipments {
			shipments[i] = shipments[i].Swapped()
		}
	case query.LabelSize() != "":
		shipments = h.partitioner.Partition(shipments, query.LabelSize())
	}

	overrides := b.Overrides()
	response := GetBatchShipmentsResponse{
		BatchID:    b.ID(),
		SourceName: b.SourceName(),
		CreatedAt:  b.CreatedAt(),
		Shipments:  make([]BatchShipment, 0, len(shipments)),
	}
	for _, s := range shipments {
		_, overridden := overrides[s.Reference]
		response.Shipments = append(response.Shipments, BatchShipment{
			Shipment:   s,
			OrderIDs:   b.OrderIDs(s.Reference),
			Overridden: overridden,
		})
	}

	return response, nil
}
