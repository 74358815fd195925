package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// PackageClassifier picks the nominal package type.
//
// Decision order, first match wins:
//  1. item count > flat max item count: parcel
//  2. expedited shipping method: parcel
//  3. value >= flat max value: parcel
//  4. item count > letter max item count: flat
//  5. letter
//
// Escalation to flat uses the letter profile while every parcel rule uses the
// flat profile. Keep both thresholds; they are not interchangeable.
type PackageClassifier struct{}

func NewPackageClassifier() PackageClassifier {
	return PackageClassifier{}
}

func (PackageClassifier) Classify(
	itemCount int,
	value kernel.Money,
	method order.ShippingMethod,
	s settings.ShippingSettings,
) (shipment.PackageType, error) {
	flat := s.Profile(shipment.PackageFlat)

	flatMaxItems, err := flat.MaxItemCount()
	if err != nil {
		return "", err
	}
	if itemCount > flatMaxItems {
		return shipment.PackageParcel, nil
	}

	if method.IsExpedited() {
		return shipment.PackageParcel, nil
	}

	flatMaxValue, err := flat.MaxValue()
	if err != nil {
		return "", err
	}
	if value.GreaterThanOrEqual(flatMaxValue) {
		return shipment.PackageParcel, nil
	}

	letterMaxItems, err := s.Profile(shipment.PackageLetter).MaxItemCount()
	if err != nil {
		return "", err
	}
	if itemCount > letterMaxItems {
		return shipment.PackageFlat, nil
	}

	return shipment.PackageLetter, nil
}
