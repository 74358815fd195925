package shipment_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShipment() shipment.Shipment {
	sender := kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301", Country: "US"}
	return shipment.Shipment{
		Reference:     "1001",
		ToAddress:     kernel.Address{Name: "Ada Lovelace", Street1: "12 Main St", City: "Boston", State: "MA", Zip: "02134", Country: "US"},
		FromAddress:   sender,
		ReturnAddress: sender,
		Parcel: shipment.Parcel{
			Length:            decimal.RequireFromString("9"),
			Width:             decimal.RequireFromString("6"),
			Height:            decimal.RequireFromString("0.25"),
			Weight:            decimal.RequireFromString("1.10"),
			PredefinedPackage: shipment.PackageLetter,
		},
		Carrier: shipment.Carrier,
		Service: shipment.ServiceFirstClass,
		Options: shipment.Options{
			LabelFormat:          shipment.LabelFormatPNG,
			LabelSize:            shipment.LabelSize7x3,
			InvoiceNumber:        "1001",
			DeliveryConfirmation: shipment.NoSignature,
		},
	}
}

func TestShipmentValidate(t *testing.T) {
	assert.NoError(t, sampleShipment().Validate())

	s := sampleShipment()
	s.Reference = ""
	s.Service = "Carrier Pigeon"
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSwappedExchangesOnlyAddresses(t *testing.T) {
	original := sampleShipment()

	swapped := original.Swapped()

	assert.Equal(t, original.FromAddress, swapped.ToAddress)
	assert.Equal(t, original.ToAddress, swapped.FromAddress)
	assert.Equal(t, original.ReturnAddress, swapped.ReturnAddress)
	assert.Equal(t, original.Parcel, swapped.Parcel)
	assert.Equal(t, original.Options, swapped.Options)
	assert.Equal(t, "Ada Lovelace", original.ToAddress.Name)
}

func TestWithOverride(t *testing.T) {
	original := sampleShipment()
	service := shipment.ServicePriority
	pkg := shipment.PackageParcel
	size := shipment.LabelSize4x6
	weight := decimal.RequireFromString("8")

	edited := original.WithOverride(shipment.Override{
		Service:     &service,
		PackageType: &pkg,
		LabelSize:   &size,
		Weight:      &weight,
	})

	assert.Equal(t, shipment.ServicePriority, edited.Service)
	assert.Equal(t, shipment.PackageParcel, edited.Parcel.PredefinedPackage)
	assert.Equal(t, shipment.LabelSize4x6, edited.Options.LabelSize)
	assert.True(t, edited.Parcel.Weight.Equal(weight))
	assert.True(t, edited.Parcel.Length.Equal(original.Parcel.Length))

	assert.Equal(t, shipment.ServiceFirstClass, original.Service)
	assert.Equal(t, original, original.WithOverride(shipment.Override{}))
}

func TestOverrideValidate(t *testing.T) {
	assert.True(t, shipment.Override{}.IsEmpty())
	assert.NoError(t, shipment.Override{}.Validate())

	zero := decimal.Zero
	size := shipment.LabelSize("8x11")
	err := shipment.Override{Height: &zero, LabelSize: &size}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPackageTypeRank(t *testing.T) {
	assert.Less(t, shipment.PackageLetter.Rank(), shipment.PackageFlat.Rank())
	assert.Less(t, shipment.PackageFlat.Rank(), shipment.PackageParcel.Rank())
	assert.Equal(t, 3, shipment.PackageType("Crate").Rank())
}
