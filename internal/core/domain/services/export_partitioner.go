package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// Partition is the set of shipments printed on one label size.
type Partition struct {
	LabelSize shipment.LabelSize
	Shipments []shipment.Shipment
}

// ExportPartitioner splits shipments by label size for export.
// A label size without shipments is not an error; it is simply empty.
type ExportPartitioner struct{}

func NewExportPartitioner() ExportPartitioner {
	return ExportPartitioner{}
}

// Partition returns the shipments printed on size, in input order.
func (ExportPartitioner) Partition(shipments []shipment.Shipment, size shipment.LabelSize) []shipment.Shipment {
	var result []shipment.Shipment
	for _, s := range shipments {
		if s.Options.LabelSize == size {
			result = append(result, s)
		}
	}
	return result
}

// PartitionAll returns one partition per supported label size that has at
// least one shipment, in shipment.LabelSizes order.
func (p ExportPartitioner) PartitionAll(shipments []shipment.Shipment) []Partition {
	var result []Partition
	for _, size := range shipment.LabelSizes() {
		if part := p.Partition(shipments, size); len(part) > 0 {
			result = append(result, Partition{LabelSize: size, Shipments: part})
		}
	}
	return result
}

// Returns is Partition over the return view of every shipment.
func (p ExportPartitioner) Returns(shipments []shipment.Shipment, size shipment.LabelSize) []shipment.Shipment {
	swapped := make([]shipment.Shipment, 0, len(shipments))
	for _, s := range shipments {
		swapped = append(swapped, s.Swapped())
	}
	return p.Partition(swapped, size)
}
