package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// weightPlaces is the precision of declared weights, in decimal places.
const weightPlaces = 2

// ParcelBuilder computes the physical parcel for a classified shipment.
//
// Profile selection:
//   - letter profile only for first class letters
//   - flat profile only for first class flats
//   - parcel profile for everything else, whatever the nominal package type
//
// Weight is base + items * per-item, rounded up to two decimals so the
// declared weight is never below the real one. Dimensions come from the profile.
type ParcelBuilder struct{}

func NewParcelBuilder() ParcelBuilder {
	return ParcelBuilder{}
}

func (ParcelBuilder) Build(
	service shipment.ServiceTier,
	packageType shipment.PackageType,
	itemCount int,
	s settings.ShippingSettings,
) (shipment.Parcel, error) {
	if itemCount < 0 {
		return shipment.Parcel{}, errs.NewValueIsOutOfRangeError("item count", itemCount, 0, "unbounded")
	}

	profile := s.Profile(ProfileFor(service, packageType))

	base, err := profile.BaseWeight()
	if err != nil {
		return shipment.Parcel{}, err
	}
	perItem, err := profile.PerItemWeight()
	if err != nil {
		return shipment.Parcel{}, err
	}
	length, width, height, err := profile.Dimensions()
	if err != nil {
		return shipment.Parcel{}, err
	}

	weight := base.Add(perItem.Mul(decimal.NewFromInt(int64(itemCount)))).RoundCeil(weightPlaces)

	return shipment.Parcel{
		Length:            length,
		Width:             width,
		Height:            height,
		Weight:            weight,
		PredefinedPackage: profile.PackageType(),
	}, nil
}

// ProfileFor returns the package type whose profile a shipment is built with.
func ProfileFor(service shipment.ServiceTier, packageType shipment.PackageType) shipment.PackageType {
	if service != shipment.ServiceFirstClass {
		return shipment.PackageParcel
	}
	switch packageType {
	case shipment.PackageLetter, shipment.PackageFlat:
		return packageType
	default:
		return shipment.PackageParcel
	}
}
