package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is one sold marketplace order after normalization.
//
// Order follows these invariants:
//   - The identifier is non-empty
//   - street1, city, state and postal code are present (non-blank)
//   - Item count is zero or greater
//   - Merchandise value is a non-negative exact decimal
//
// Address fields keep their raw form because consolidation keys on raw values.
type Order struct {
	id             string
	firstName      string
	lastName       string
	destination    Destination
	itemCount      int
	value          kernel.Money
	shippingMethod ShippingMethod

	isConstructed bool
}

// NewOrder creates a validated Order.
//
// Parameters:
//   - id: marketplace order identifier (must be non-empty)
//   - firstName, lastName: recipient name parts
//   - destination: raw ship-to address
//   - itemCount: number of items sold in the order (>= 0)
//   - value: merchandise value
//   - method: buyer-selected shipping method
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every violated invariant joined together
//
// Example:
//
//	o, err := order.NewOrder("4F2A-1", "Ada", "Lovelace", order.Destination{
//	    Street1: "12 Analytical Way", City: "Boston", State: "MA", PostalCode: "02134",
//	}, 3, kernel.MustMoney("12.40"), "Standard (7-10 days)")
func NewOrder(
	id string,
	firstName, lastName string,
	destination Destination,
	itemCount int,
	value kernel.Money,
	method ShippingMethod,
) (*Order, error) {
	o := &Order{
		firstName:      firstName,
		lastName:       lastName,
		value:          value,
		shippingMethod: method,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDestination(destination),
		o.setItemCount(itemCount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the marketplace order identifier.
func (o *Order) ID() string {
	return o.id
}

// FirstName returns the recipient's first name.
func (o *Order) FirstName() string {
	return o.firstName
}

// LastName returns the recipient's last name.
func (o *Order) LastName() string {
	return o.lastName
}

// RecipientName returns first and last name joined for the label.
func (o *Order) RecipientName() string {
	return kernel.FullName(o.firstName, o.lastName)
}

// Destination returns the raw ship-to address.
func (o *Order) Destination() Destination {
	return o.destination
}

// Key returns the consolidation key of the destination.
func (o *Order) Key() AddressKey {
	return o.destination.Key()
}

// ItemCount returns the number of items in the order.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// Value returns the merchandise value.
func (o *Order) Value() kernel.Money {
	return o.value
}

// ShippingMethod returns the buyer-selected shipping method.
func (o *Order) ShippingMethod() ShippingMethod {
	return o.shippingMethod
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setDestination(d Destination) error {
	required := []struct{ name, value string }{
		{"street1", d.Street1},
		{"city", d.City},
		{"state", d.State},
		{"postal code", d.PostalCode},
	}

	var missing []error
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, errs.NewValueIsRequiredError(field.name))
		}
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	o.destination = d
	return nil
}

func (o *Order) setItemCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item count", fmt.Errorf("%d is negative", count))
	}
	o.itemCount = count
	return nil
}
