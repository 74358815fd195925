package shipment

import (
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Parcel holds the physical description sent to the carrier.
// Dimensions are inches, weight is ounces.
type Parcel struct {
	Length            decimal.Decimal
	Width             decimal.Decimal
	Height            decimal.Decimal
	Weight            decimal.Decimal
	PredefinedPackage PackageType
}

// Options are the label purchase options.
type Options struct {
	LabelFormat          LabelFormat
	LabelSize            LabelSize
	InvoiceNumber        string
	DeliveryConfirmation DeliveryConfirmation
}

// Shipment is one physical package ready for label purchase.
// Reference equals the representative order id of the consolidated order.
type Shipment struct {
	Reference     string
	ToAddress     kernel.Address
	FromAddress   kernel.Address
	ReturnAddress kernel.Address
	Parcel        Parcel
	Carrier       string
	Service       ServiceTier
	Options       Options
}

// Validate checks the closed value sets and the presence of a reference.
// It is used on restore from persistence and after overrides are applied.
func (s Shipment) Validate() error {
	var reference error
	if s.Reference == "" {
		reference = errs.NewValueIsRequiredError("reference")
	}

	return errors.Join(
		reference,
		s.Service.Validate(),
		s.Parcel.PredefinedPackage.Validate(),
		s.Options.LabelSize.Validate(),
		s.Options.LabelFormat.Validate(),
		s.Options.DeliveryConfirmation.Validate(),
	)
}

// Swapped returns the return-shipment view: origin and destination exchanged,
// everything else unchanged.
func (s Shipment) Swapped() Shipment {
	s.ToAddress, s.FromAddress = s.FromAddress, s.ToAddress
	return s
}
