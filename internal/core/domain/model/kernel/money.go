package kernel

import (
	"fmt"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative currency amount backed by an exact decimal.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses amounts as they appear in marketplace exports:
// an optional leading "$" and thousands separators are accepted.
//
// Example:
//
//	m, err := kernel.MoneyFromString("$1,024.50")
//	// m.String() == "1024.50"
func MoneyFromString(s string) (Money, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return Money{}, errs.NewValueIsRequiredError("money")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal amount", s))
	}

	return NewMoney(d)
}

// MustMoney parses s and panics on failure. Intended for tests and constants.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the exact sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
