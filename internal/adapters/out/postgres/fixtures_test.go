package postgres_test

import (
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

func createTestBatch(createdAt time.Time) *batch.Batch {
	sender := kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301", Country: "US"}
	b, _ := batch.NewBatch("export.csv", createdAt, []batch.Entry{{
		Shipment: shipment.Shipment{
			Reference:     "1001",
			ToAddress:     kernel.Address{Name: "Ada Lovelace", Street1: "12 Main St", City: "Boston", State: "MA", Zip: "02134", Country: "US"},
			FromAddress:   sender,
			ReturnAddress: sender,
			Parcel: shipment.Parcel{
				Length: decimal.NewFromInt(9), Width: decimal.NewFromInt(6), Height: decimal.RequireFromString("0.25"),
				Weight: decimal.RequireFromString("1.1"), PredefinedPackage: shipment.PackageLetter,
			},
			Carrier: shipment.Carrier,
			Service: shipment.ServiceFirstClass,
			Options: shipment.Options{
				LabelFormat: shipment.LabelFormatPNG, LabelSize: shipment.LabelSize7x3,
				InvoiceNumber: "1001", DeliveryConfirmation: shipment.NoSignature,
			},
		},
		OrderIDs:  []string{"1001"},
		ItemCount: 3,
		Value:     kernel.MustMoney("9.99"),
	}})
	return b
}
