package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// ServiceClassifier picks the carrier service tier.
//
// Decision order, first match wins:
//  1. expedited shipping method: the configured expedited service (ground if unset)
//  2. value >= flat max value: ground
//  3. item count > flat max item count: ground
//  4. first class
//
// Both thresholds come from the flat profile, even for shipments that will
// end up as letters. Settings fields are parsed only when the cascade reaches them.
type ServiceClassifier struct{}

func NewServiceClassifier() ServiceClassifier {
	return ServiceClassifier{}
}

func (ServiceClassifier) Classify(
	itemCount int,
	value kernel.Money,
	method order.ShippingMethod,
	s settings.ShippingSettings,
) (shipment.ServiceTier, error) {
	if method.IsExpedited() {
		return s.ExpeditedServiceTier(), nil
	}

	flat := s.Profile(shipment.PackageFlat)

	maxValue, err := flat.MaxValue()
	if err != nil {
		return "", err
	}
	if value.GreaterThanOrEqual(maxValue) {
		return shipment.ServiceGround, nil
	}

	maxItems, err := flat.MaxItemCount()
	if err != nil {
		return "", err
	}
	if itemCount > maxItems {
		return shipment.ServiceGround, nil
	}

	return shipment.ServiceFirstClass, nil
}
