package commands_test

import (
	"testing"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func exportRecords() []order.Record {
	row := func(line int, id, street, count, value, method string) order.Record {
		return order.Record{
			Line: line, OrderID: id, FirstName: "Ada", LastName: "Lovelace",
			Address1: street, City: "Boston", State: "MA", PostalCode: "02134", Country: "US",
			ItemCount: count, Value: value, ShippingMethod: method,
		}
	}
	return []order.Record{
		row(1, "1001", "12 Main St", "3", "4.00", "Standard"),
		row(2, "1002", "12 Main St", "2", "3.00", "Standard"),
		row(3, "1003", "9 Oak Ave", "1", "80.00", "Standard"),
		row(4, "1004", "9 Oak Ave", "x", "1.00", "Standard"),
		{Line: 5},
	}
}

func testShipment(reference string, size shipment.LabelSize) shipment.Shipment {
	return shipment.Shipment{
		Reference:     reference,
		ToAddress:     kernel.Address{Name: "Ada Lovelace", Street1: "12 Main St", City: "Boston", State: "MA", Zip: "02134"},
		FromAddress:   kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301"},
		ReturnAddress: kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301"},
		Parcel: shipment.Parcel{
			Length: decimal.NewFromInt(9), Width: decimal.NewFromInt(6),
			Height: decimal.RequireFromString("0.25"), Weight: decimal.RequireFromString("1.1"),
			PredefinedPackage: shipment.PackageLetter,
		},
		Carrier: shipment.Carrier,
		Service: shipment.ServiceFirstClass,
		Options: shipment.Options{
			LabelFormat: shipment.LabelFormatPNG, LabelSize: size,
			InvoiceNumber: reference, DeliveryConfirmation: shipment.NoSignature,
		},
	}
}

func testBatch(t *testing.T) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch("export.csv", exportTime, []batch.Entry{
		{Shipment: testShipment("1001", shipment.LabelSize7x3), OrderIDs: []string{"1001", "1002"}, ItemCount: 5, Value: kernel.MustMoney("7")},
		{Shipment: testShipment("1003", shipment.LabelSize4x6), OrderIDs: []string{"1003"}, ItemCount: 1, Value: kernel.MustMoney("80")},
		{Shipment: testShipment("1005", shipment.LabelSize7x3), OrderIDs: []string{"1005"}, ItemCount: 2, Value: kernel.MustMoney("2")},
	})
	require.NoError(t, err)
	return b
}
