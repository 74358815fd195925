package shipment

import (
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Override is a reviewer's manual edit of an assembled shipment.
// Nil fields leave the assembled value in place.
type Override struct {
	Service              *ServiceTier
	PackageType          *PackageType
	LabelSize            *LabelSize
	Length               *decimal.Decimal
	Width                *decimal.Decimal
	Height               *decimal.Decimal
	Weight               *decimal.Decimal
	DeliveryConfirmation *DeliveryConfirmation
}

// IsEmpty reports whether the override changes nothing.
func (o Override) IsEmpty() bool {
	return o == Override{}
}

// Validate checks every set field. Measurements must be positive.
func (o Override) Validate() error {
	var result []error
	if o.Service != nil {
		result = append(result, o.Service.Validate())
	}
	if o.PackageType != nil {
		result = append(result, o.PackageType.Validate())
	}
	if o.LabelSize != nil {
		result = append(result, o.LabelSize.Validate())
	}
	if o.DeliveryConfirmation != nil {
		result = append(result, o.DeliveryConfirmation.Validate())
	}

	for _, m := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{"length", o.Length},
		{"width", o.Width},
		{"height", o.Height},
		{"weight", o.Weight},
	} {
		if m.value != nil && !m.value.IsPositive() {
			result = append(result, errs.NewValueIsOutOfRangeError(m.name, m.value.String(), "0 (exclusive)", "unbounded"))
		}
	}

	return errors.Join(result...)
}

// WithOverride returns a copy of s with every set field of o applied.
func (s Shipment) WithOverride(o Override) Shipment {
	if o.Service != nil {
		s.Service = *o.Service
	}
	if o.PackageType != nil {
		s.Parcel.PredefinedPackage = *o.PackageType
	}
	if o.LabelSize != nil {
		s.Options.LabelSize = *o.LabelSize
	}
	if o.Length != nil {
		s.Parcel.Length = *o.Length
	}
	if o.Width != nil {
		s.Parcel.Width = *o.Width
	}
	if o.Height != nil {
		s.Parcel.Height = *o.Height
	}
	if o.Weight != nil {
		s.Parcel.Weight = *o.Weight
	}
	if o.DeliveryConfirmation != nil {
		s.Options.DeliveryConfirmation = *o.DeliveryConfirmation
	}
	return s
}
