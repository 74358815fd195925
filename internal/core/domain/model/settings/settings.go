package settings

import (
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// PackageProfile is the physical configuration of one package type.
// MaxItemCount and MaxValue are only read for the letter and flat profiles.
type PackageProfile struct {
	LabelSize     shipment.LabelSize `yaml:"labelSize" json:"labelSize"`
	BaseWeight    string             `yaml:"baseWeight" json:"baseWeight"`
	PerItemWeight string             `yaml:"perItemWeight" json:"perItemWeight"`
	MaxItemCount  string             `yaml:"maxItemCount" json:"maxItemCount"`
	MaxValue      string             `yaml:"maxValue" json:"maxValue"`
	Length        string             `yaml:"length" json:"length"`
	Width         string             `yaml:"width" json:"width"`
	Height        string             `yaml:"height" json:"height"`
}

// ShippingSettings is one snapshot of the shipping configuration.
// A pipeline run receives its own copy and never writes to it.
type ShippingSettings struct {
	Letter           PackageProfile       `yaml:"letter" json:"letter"`
	Flat             PackageProfile       `yaml:"flat" json:"flat"`
	Parcel           PackageProfile       `yaml:"parcel" json:"parcel"`
	Sender           kernel.Address       `yaml:"sender" json:"sender"`
	LabelFormat      shipment.LabelFormat `yaml:"labelFormat" json:"labelFormat"`
	ExpeditedService shipment.ServiceTier `yaml:"expeditedService" json:"expeditedService"`
}

// Default returns the built-in configuration.
func Default() ShippingSettings {
	return ShippingSettings{
		Letter: PackageProfile{
			LabelSize:     shipment.LabelSize7x3,
			BaseWeight:    "0.83",
			PerItemWeight: "0.09",
			MaxItemCount:  "24",
			MaxValue:      "20.00",
			Length:        "9",
			Width:         "6",
			Height:        "0.25",
		},
		Flat: PackageProfile{
			LabelSize:     shipment.LabelSize6x4,
			BaseWeight:    "2.0",
			PerItemWeight: "0.1",
			MaxItemCount:  "100",
			MaxValue:      "50.00",
			Length:        "12",
			Width:         "9",
			Height:        "0.75",
		},
		Parcel: PackageProfile{
			LabelSize:     shipment.LabelSize4x6,
			BaseWeight:    "3.0",
			PerItemWeight: "0.1",
			Length:        "8",
			Width:         "6",
			Height:        "2",
		},
		LabelFormat:      shipment.LabelFormatPNG,
		ExpeditedService: shipment.ServiceGround,
	}
}

// Resolved returns a copy with every empty field taken from Default().
// The receiver is not modified.
func (s ShippingSettings) Resolved() ShippingSettings {
	d := Default()

	s.Letter = s.Letter.resolved(d.Letter)
	s.Flat = s.Flat.resolved(d.Flat)
	s.Parcel = s.Parcel.resolved(d.Parcel)
	if s.LabelFormat == "" {
		s.LabelFormat = d.LabelFormat
	}
	if s.ExpeditedService == "" {
		s.ExpeditedService = d.ExpeditedService
	}
	return s
}

// Profile returns the profile for t with defaults applied.
// Unknown package types get the parcel profile.
func (s ShippingSettings) Profile(t shipment.PackageType) Profile {
	r := s.Resolved()

	switch t {
	case shipment.PackageLetter:
		return Profile{packageType: shipment.PackageLetter, raw: r.Letter}
	case shipment.PackageFlat:
		return Profile{packageType: shipment.PackageFlat, raw: r.Flat}
	default:
		return Profile{packageType: shipment.PackageParcel, raw: r.Parcel}
	}
}

// ExpeditedServiceTier returns the tier used for expedited shipments,
// ground when nothing is configured.
func (s ShippingSettings) ExpeditedServiceTier() shipment.ServiceTier {
	if s.ExpeditedService == "" {
		return shipment.ServiceGround
	}
	return s.ExpeditedService
}

// Validate performs the checks applied when settings are saved: closed sets
// only. Numeric strings are deliberately left unparsed.
func (s ShippingSettings) Validate() error {
	var result []error
	for _, p := range []struct {
		name    string
		profile PackageProfile
	}{
		{"letter", s.Letter},
		{"flat", s.Flat},
		{"parcel", s.Parcel},
	} {
		if p.profile.LabelSize == "" {
			continue
		}
		if err := p.profile.LabelSize.Validate(); err != nil {
			result = append(result, errs.NewSettingIsInvalidError(p.name, "labelSize", string(p.profile.LabelSize), err))
		}
	}

	if s.LabelFormat != "" {
		if err := s.LabelFormat.Validate(); err != nil {
			result = append(result, errs.NewSettingIsInvalidError("settings", "labelFormat", string(s.LabelFormat), err))
		}
	}
	if s.ExpeditedService != "" {
		if err := s.ExpeditedService.Validate(); err != nil {
			result = append(result, errs.NewSettingIsInvalidError("settings", "expeditedService", string(s.ExpeditedService), err))
		}
	}

	return errors.Join(result...)
}

func (p PackageProfile) resolved(d PackageProfile) PackageProfile {
	if p.LabelSize == "" {
		p.LabelSize = d.LabelSize
	}
	for _, f := range []struct {
		value    *string
		fallback string
	}{
		{&p.BaseWeight, d.BaseWeight},
		{&p.PerItemWeight, d.PerItemWeight},
		{&p.MaxItemCount, d.MaxItemCount},
		{&p.MaxValue, d.MaxValue},
		{&p.Length, d.Length},
		{&p.Width, d.Width},
		{&p.Height, d.Height},
	} {
		if *f.value == "" {
			*f.value = f.fallback
		}
	}
	return p
}
