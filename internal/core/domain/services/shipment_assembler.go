package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// SignatureThreshold is the merchandise value from which delivery needs a signature.
var SignatureThreshold = kernel.MustMoney("250")

// ShipmentAssembler builds one shipment per consolidated order.
//
// Steps:
//   - destination from the representative address, recipient = first + last name
//   - service tier and nominal package type from the classifiers
//   - parcel from the parcel builder
//   - label size from the profile of the parcel's package type
//   - signature when value >= SignatureThreshold
//   - origin and return address = sender, invoice number = reference
type ShipmentAssembler struct {
	services ServiceClassifier
	packages PackageClassifier
	parcels  ParcelBuilder
}

func NewShipmentAssembler() ShipmentAssembler {
	return ShipmentAssembler{
		services: NewServiceClassifier(),
		packages: NewPackageClassifier(),
		parcels:  NewParcelBuilder(),
	}
}

func (a ShipmentAssembler) Assemble(c *order.ConsolidatedOrder, s settings.ShippingSettings) (shipment.Shipment, error) {
	resolved := s.Resolved()

	service, err := a.services.Classify(c.ItemCount(), c.Value(), c.ShippingMethod(), resolved)
	if err != nil {
		return shipment.Shipment{}, err
	}
	packageType, err := a.packages.Classify(c.ItemCount(), c.Value(), c.ShippingMethod(), resolved)
	if err != nil {
		return shipment.Shipment{}, err
	}
	parcel, err := a.parcels.Build(service, packageType, c.ItemCount(), resolved)
	if err != nil {
		return shipment.Shipment{}, err
	}
	labelSize, err := resolved.Profile(parcel.PredefinedPackage).LabelSize()
	if err != nil {
		return shipment.Shipment{}, err
	}

	confirmation := shipment.NoSignature
	if c.Value().GreaterThanOrEqual(SignatureThreshold) {
		confirmation = shipment.Signature
	}

	return shipment.Shipment{
		Reference:     c.Reference(),
		ToAddress:     c.Destination().Address(c.RecipientName()),
		FromAddress:   resolved.Sender,
		ReturnAddress: resolved.Sender,
		Parcel:        parcel,
		Carrier:       shipment.Carrier,
		Service:       service,
		Options: shipment.Options{
			LabelFormat:          resolved.LabelFormat,
			LabelSize:            labelSize,
			InvoiceNumber:        c.Reference(),
			DeliveryConfirmation: confirmation,
		},
	}, nil
}
