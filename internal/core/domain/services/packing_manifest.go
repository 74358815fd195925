package services

import (
	"cmp"
	"slices"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ManifestRow is one line of the packing manifest (pull sheet).
type ManifestRow struct {
	Reference     string
	RecipientName string
	OrderIDs      []string
	ItemCount     int
	Value         kernel.Money
	PackageType   shipment.PackageType
	Service       shipment.ServiceTier
	LabelSize     shipment.LabelSize
	Weight        decimal.Decimal
}

// PackingManifestBuilder tabulates entries for the people packing orders.
// Rows are sorted by package type (letter, flat, parcel), then recipient name,
// then reference.
type PackingManifestBuilder struct{}

func NewPackingManifestBuilder() PackingManifestBuilder {
	return PackingManifestBuilder{}
}

func (PackingManifestBuilder) Build(entries []batch.Entry) []ManifestRow {
	rows := make([]ManifestRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ManifestRow{
			Reference:     e.Shipment.Reference,
			RecipientName: e.Shipment.ToAddress.Name,
			OrderIDs:      slices.Clone(e.OrderIDs),
			ItemCount:     e.ItemCount,
			Value:         e.Value,
			PackageType:   e.Shipment.Parcel.PredefinedPackage,
			Service:       e.Shipment.Service,
			LabelSize:     e.Shipment.Options.LabelSize,
			Weight:        e.Shipment.Parcel.Weight,
		})
	}

	slices.SortStableFunc(rows, func(a, b ManifestRow) int {
		return cmp.Or(
			cmp.Compare(a.PackageType.Rank(), b.PackageType.Rank()),
			cmp.Compare(a.RecipientName, b.RecipientName),
			cmp.Compare(a.Reference, b.Reference),
		)
	})
	return rows
}
