package services_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() settings.ShippingSettings {
	s := settings.Default()
	s.Sender = kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301", Country: "US"}
	return s
}

func TestShipmentAssembler_Assemble(t *testing.T) {
	assembler := services.NewShipmentAssembler()

	t.Run("should assemble a first class letter", func(t *testing.T) {
		c := mustConsolidated(t, 3, "12.00", "Standard")

		got, err := assembler.Assemble(c, testSettings())

		require.NoError(t, err)
		assert.Equal(t, "1001", got.Reference)
		assert.Equal(t, kernel.Address{
			Name: "Ada Lovelace", Street1: "12 Main St", City: "Boston", State: "MA", Zip: "02134", Country: "US",
		}, got.ToAddress)
		assert.Equal(t, testSettings().Sender, got.FromAddress)
		assert.Equal(t, testSettings().Sender, got.ReturnAddress)
		assert.Equal(t, shipment.Carrier, got.Carrier)
		assert.Equal(t, shipment.ServiceFirstClass, got.Service)
		assert.Equal(t, shipment.PackageLetter, got.Parcel.PredefinedPackage)
		assert.True(t, got.Parcel.Weight.Equal(decimal.RequireFromString("1.10")))
		assert.Equal(t, shipment.Options{
			LabelFormat:          shipment.LabelFormatPNG,
			LabelSize:            shipment.LabelSize7x3,
			InvoiceNumber:        "1001",
			DeliveryConfirmation: shipment.NoSignature,
		}, got.Options)
		assert.NoError(t, got.Validate())
	})

	t.Run("should use the flat profile for fifty items below the value ceiling", func(t *testing.T) {
		got, err := assembler.Assemble(mustConsolidated(t, 50, "10.00", "Standard"), testSettings())

		require.NoError(t, err)
		assert.Equal(t, shipment.ServiceFirstClass, got.Service)
		assert.Equal(t, shipment.PackageFlat, got.Parcel.PredefinedPackage)
		assert.Equal(t, shipment.LabelSize6x4, got.Options.LabelSize)
	})

	t.Run("should take the label size of the parcel profile actually used", func(t *testing.T) {
		got, err := assembler.Assemble(mustConsolidated(t, 1, "1.00", "Expedited Priority"), testSettings())

		require.NoError(t, err)
		assert.Equal(t, shipment.ServiceGround, got.Service)
		assert.Equal(t, shipment.PackageParcel, got.Parcel.PredefinedPackage)
		assert.Equal(t, shipment.LabelSize4x6, got.Options.LabelSize)
	})

	t.Run("should require a signature from the threshold up", func(t *testing.T) {
		below, err := assembler.Assemble(mustConsolidated(t, 1, "249.99", "Standard"), testSettings())
		require.NoError(t, err)
		at, err := assembler.Assemble(mustConsolidated(t, 1, "250.00", "Standard"), testSettings())
		require.NoError(t, err)

		assert.Equal(t, shipment.NoSignature, below.Options.DeliveryConfirmation)
		assert.Equal(t, shipment.Signature, at.Options.DeliveryConfirmation)
	})

	t.Run("should fill missing settings from defaults", func(t *testing.T) {
		got, err := assembler.Assemble(mustConsolidated(t, 3, "12.00", "Standard"), settings.ShippingSettings{})

		require.NoError(t, err)
		assert.Equal(t, shipment.LabelFormatPNG, got.Options.LabelFormat)
		assert.Equal(t, shipment.LabelSize7x3, got.Options.LabelSize)
	})

	t.Run("should surface malformed settings", func(t *testing.T) {
		s := testSettings()
		s.Letter.LabelSize = "9x9"

		_, err := assembler.Assemble(mustConsolidated(t, 3, "12.00", "Standard"), s)

		assert.ErrorIs(t, err, errs.ErrSettingIsInvalid)
	})
}
