package shipment

import (
	"fmt"
	"slices"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// Carrier is the only carrier shipments are classified for.
const Carrier = "USPS"

// ServiceTier is the carrier service class.
type ServiceTier string

const (
	ServiceFirstClass ServiceTier = "First"
	ServiceGround     ServiceTier = "GroundAdvantage"
	ServicePriority   ServiceTier = "Priority"
	ServiceExpress    ServiceTier = "Express"
)

// ServiceTiers lists every known tier.
func ServiceTiers() []ServiceTier {
	return []ServiceTier{ServiceFirstClass, ServiceGround, ServicePriority, ServiceExpress}
}

// Validate rejects tiers outside the known set.
func (s ServiceTier) Validate() error {
	if !slices.Contains(ServiceTiers(), s) {
		return errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%q is not a known service tier", s))
	}
	return nil
}

// PackageType is the physical packaging category. The values double as the
// carrier's predefined package names.
type PackageType string

const (
	PackageLetter PackageType = "Letter"
	PackageFlat   PackageType = "Flat"
	PackageParcel PackageType = "Parcel"
)

// PackageTypes lists package types from smallest to largest.
func PackageTypes() []PackageType {
	return []PackageType{PackageLetter, PackageFlat, PackageParcel}
}

// Validate rejects package types outside the known set.
func (p PackageType) Validate() error {
	if !slices.Contains(PackageTypes(), p) {
		return errs.NewValueIsInvalidErrorWithCause("package type", fmt.Errorf("%q is not a known package type", p))
	}
	return nil
}

// Rank orders package types by size: Letter < Flat < Parcel. Unknown types rank last.
func (p PackageType) Rank() int {
	if i := slices.Index(PackageTypes(), p); i >= 0 {
		return i
	}
	return len(PackageTypes())
}

// LabelSize is the physical print size of the generated label.
type LabelSize string

const (
	LabelSize7x3 LabelSize = "7x3"
	LabelSize6x4 LabelSize = "6x4"
	LabelSize4x6 LabelSize = "4x6"
)

// LabelSizes lists every supported label size in export order.
func LabelSizes() []LabelSize {
	return []LabelSize{LabelSize7x3, LabelSize6x4, LabelSize4x6}
}

// Validate rejects sizes outside the supported set.
func (l LabelSize) Validate() error {
	if !slices.Contains(LabelSizes(), l) {
		return errs.NewValueIsInvalidErrorWithCause("label size", fmt.Errorf("%q is not a supported label size", l))
	}
	return nil
}

// LabelFormat is the label image format requested from the label system.
type LabelFormat string

const (
	LabelFormatPNG  LabelFormat = "PNG"
	LabelFormatPDF  LabelFormat = "PDF"
	LabelFormatZPL  LabelFormat = "ZPL"
	LabelFormatEPL2 LabelFormat = "EPL2"
)

// Validate rejects formats outside the supported set.
func (f LabelFormat) Validate() error {
	if !slices.Contains([]LabelFormat{LabelFormatPNG, LabelFormatPDF, LabelFormatZPL, LabelFormatEPL2}, f) {
		return errs.NewValueIsInvalidErrorWithCause("label format", fmt.Errorf("%q is not a supported label format", f))
	}
	return nil
}

// DeliveryConfirmation is the proof-of-delivery level.
type DeliveryConfirmation string

const (
	Signature   DeliveryConfirmation = "SIGNATURE"
	NoSignature DeliveryConfirmation = "NO_SIGNATURE"
)

// Validate rejects unknown confirmation levels.
func (d DeliveryConfirmation) Validate() error {
	if d != Signature && d != NoSignature {
		return errs.NewValueIsInvalidErrorWithCause("delivery confirmation", fmt.Errorf("%q is not a known level", d))
	}
	return nil
}
