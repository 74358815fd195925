package services_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classifyCase struct {
	items       int
	value       string
	method      order.ShippingMethod
	wantService shipment.ServiceTier
	wantPackage shipment.PackageType
}

// Defaults: letter max 24 items, flat max 100 items and 50.00 value.
var classifyCases = map[string]classifyCase{
	"small order":                      {3, "5.00", "Standard", shipment.ServiceFirstClass, shipment.PackageLetter},
	"letter item ceiling":              {24, "5.00", "Standard", shipment.ServiceFirstClass, shipment.PackageLetter},
	"above letter count below flat":    {50, "10.00", "Standard", shipment.ServiceFirstClass, shipment.PackageFlat},
	"flat item ceiling":                {100, "10.00", "Standard", shipment.ServiceFirstClass, shipment.PackageFlat},
	"above flat item ceiling":          {101, "10.00", "Standard", shipment.ServiceGround, shipment.PackageParcel},
	"value at flat max":                {3, "50.00", "Standard", shipment.ServiceGround, shipment.PackageParcel},
	"value above letter max only":      {3, "30.00", "Standard", shipment.ServiceFirstClass, shipment.PackageLetter},
	"expedited small order":            {1, "1.00", "Expedited Priority", shipment.ServiceGround, shipment.PackageParcel},
	"expedited wins over value":        {1, "500.00", "Expedited (1-3 days)", shipment.ServiceGround, shipment.PackageParcel},
	"lowercase expedited prefix":       {1, "1.00", "expedited", shipment.ServiceGround, shipment.PackageParcel},
	"expedited in the middle is not":   {1, "1.00", "Standard Expedited", shipment.ServiceFirstClass, shipment.PackageLetter},
	"empty item order":                 {0, "0", "Standard", shipment.ServiceFirstClass, shipment.PackageLetter},
	"value just below flat max":        {3, "49.99", "Standard", shipment.ServiceFirstClass, shipment.PackageLetter},
	"many items just below flat value": {60, "49.99", "Standard", shipment.ServiceFirstClass, shipment.PackageFlat},
}

func TestServiceClassifier_Classify(t *testing.T) {
	classifier := services.NewServiceClassifier()

	for name, tt := range classifyCases {
		t.Run(name, func(t *testing.T) {
			got, err := classifier.Classify(tt.items, kernel.MustMoney(tt.value), tt.method, settings.Default())

			require.NoError(t, err)
			assert.Equal(t, tt.wantService, got)
		})
	}
}

func TestPackageClassifier_Classify(t *testing.T) {
	classifier := services.NewPackageClassifier()

	for name, tt := range classifyCases {
		t.Run(name, func(t *testing.T) {
			got, err := classifier.Classify(tt.items, kernel.MustMoney(tt.value), tt.method, settings.Default())

			require.NoError(t, err)
			assert.Equal(t, tt.wantPackage, got)
		})
	}
}

func TestClassifiersAreIdempotent(t *testing.T) {
	s := settings.Default()
	value := kernel.MustMoney("12.00")

	firstService, err := services.NewServiceClassifier().Classify(50, value, "Standard", s)
	require.NoError(t, err)
	firstPackage, err := services.NewPackageClassifier().Classify(50, value, "Standard", s)
	require.NoError(t, err)

	for range 10 {
		service, err := services.NewServiceClassifier().Classify(50, value, "Standard", s)
		require.NoError(t, err)
		pkg, err := services.NewPackageClassifier().Classify(50, value, "Standard", s)
		require.NoError(t, err)

		assert.Equal(t, firstService, service)
		assert.Equal(t, firstPackage, pkg)
	}
}

func TestServiceClassifier_ExpeditedDefault(t *testing.T) {
	s := settings.Default()
	s.ExpeditedService = shipment.ServicePriority

	got, err := services.NewServiceClassifier().Classify(1, kernel.MustMoney("1"), "Expedited Priority", s)

	require.NoError(t, err)
	assert.Equal(t, shipment.ServicePriority, got)
}

func TestClassifiersUseFlatThresholdsForFirstClass(t *testing.T) {
	s := settings.Default()
	s.Letter.MaxItemCount = "2"
	s.Letter.MaxValue = "1.00"

	service, err := services.NewServiceClassifier().Classify(10, kernel.MustMoney("10"), "Standard", s)
	require.NoError(t, err)
	pkg, err := services.NewPackageClassifier().Classify(10, kernel.MustMoney("10"), "Standard", s)
	require.NoError(t, err)

	assert.Equal(t, shipment.ServiceFirstClass, service, "letter thresholds never gate the service tier")
	assert.Equal(t, shipment.PackageFlat, pkg, "letter item count escalates to flat")
}

func TestClassifiersRejectMalformedSettings(t *testing.T) {
	t.Run("flat max value", func(t *testing.T) {
		s := settings.Default()
		s.Flat.MaxValue = "fifty"

		_, err := services.NewServiceClassifier().Classify(1, kernel.MustMoney("1"), "Standard", s)
		assert.ErrorIs(t, err, errs.ErrSettingIsInvalid)

		_, err = services.NewPackageClassifier().Classify(1, kernel.MustMoney("1"), "Standard", s)
		assert.ErrorIs(t, err, errs.ErrSettingIsInvalid)
	})

	t.Run("letter max item count", func(t *testing.T) {
		s := settings.Default()
		s.Letter.MaxItemCount = "2.5"

		_, err := services.NewPackageClassifier().Classify(1, kernel.MustMoney("1"), "Standard", s)
		assert.ErrorIs(t, err, errs.ErrSettingIsInvalid)
	})

	t.Run("expedited service does not need thresholds", func(t *testing.T) {
		s := settings.Default()
		s.Flat.MaxValue = "fifty"

		got, err := services.NewServiceClassifier().Classify(1, kernel.MustMoney("1"), "Expedited", s)
		require.NoError(t, err)
		assert.Equal(t, shipment.ServiceGround, got)
	})
}
