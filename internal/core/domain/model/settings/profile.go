package settings

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	errIsNegative = errors.New("must not be negative")
	errNotInteger = errors.New("not an integer")
	errNotDecimal = errors.New("not a decimal number")
)

// Profile is a resolved package profile. Its accessors parse the stored
// strings and report failures as *errs.SettingIsInvalidError.
type Profile struct {
	packageType shipment.PackageType
	raw         PackageProfile
}

// PackageType returns the package type the profile describes.
func (p Profile) PackageType() shipment.PackageType {
	return p.packageType
}

// LabelSize returns the label size printed for this package type.
func (p Profile) LabelSize() (shipment.LabelSize, error) {
	if err := p.raw.LabelSize.Validate(); err != nil {
		return "", p.invalid("labelSize", string(p.raw.LabelSize), err)
	}
	return p.raw.LabelSize, nil
}

// MaxItemCount returns the largest item count the package type accepts.
func (p Profile) MaxItemCount() (int, error) {
	raw := strings.TrimSpace(p.raw.MaxItemCount)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, p.invalid("maxItemCount", p.raw.MaxItemCount, errNotInteger)
	}
	if n < 0 {
		return 0, p.invalid("maxItemCount", p.raw.MaxItemCount, errIsNegative)
	}
	return n, nil
}

// MaxValue returns the merchandise value at which the package type stops applying.
func (p Profile) MaxValue() (kernel.Money, error) {
	m, err := kernel.MoneyFromString(p.raw.MaxValue)
	if err != nil {
		return kernel.Money{}, p.invalid("maxValue", p.raw.MaxValue, err)
	}
	return m, nil
}

// BaseWeight returns the empty package weight in ounces.
func (p Profile) BaseWeight() (decimal.Decimal, error) {
	return p.decimal("baseWeight", p.raw.BaseWeight)
}

// PerItemWeight returns the weight added per item in ounces.
func (p Profile) PerItemWeight() (decimal.Decimal, error) {
	return p.decimal("perItemWeight", p.raw.PerItemWeight)
}

// Dimensions returns length, width and height in inches.
func (p Profile) Dimensions() (length, width, height decimal.Decimal, err error) {
	var errL, errW, errH error
	length, errL = p.decimal("length", p.raw.Length)
	width, errW = p.decimal("width", p.raw.Width)
	height, errH = p.decimal("height", p.raw.Height)
	if err = errors.Join(errL, errW, errH); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	return length, width, height, nil
}

func (p Profile) decimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, p.invalid(field, raw, errNotDecimal)
	}
	if d.IsNegative() {
		return decimal.Zero, p.invalid(field, raw, errIsNegative)
	}
	return d, nil
}

func (p Profile) invalid(field, raw string, cause error) error {
	return errs.NewSettingIsInvalidError(strings.ToLower(string(p.packageType)), field, raw, cause)
}
