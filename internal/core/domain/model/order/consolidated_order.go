package order

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
)

// ErrAddressKeyMismatch is returned when absorbing an order bound for another address.
var ErrAddressKeyMismatch = errors.New("order ships to a different address")

// ConsolidatedOrder is the merge of every order sharing one AddressKey.
//
// The first order seen for the key is the representative: it supplies the
// reference, recipient and address. Item counts and values are summed over all
// absorbed orders. The shipping method is the representative's unless an
// absorbed order is expedited, in which case the latest expedited method wins.
type ConsolidatedOrder struct {
	representative *Order
	orderIDs       []string
	itemCount      int
	value          kernel.Money
	shippingMethod ShippingMethod
}

// NewConsolidatedOrder starts a consolidation with o as representative and sole member.
func NewConsolidatedOrder(o *Order) (*ConsolidatedOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &ConsolidatedOrder{
		representative: o,
		orderIDs:       []string{o.ID()},
		itemCount:      o.ItemCount(),
		value:          o.Value(),
		shippingMethod: o.ShippingMethod(),
	}, nil
}

// Absorb merges another order for the same address into the consolidation.
//
// Returns:
//   - ErrOrderIsNotConstructed if o is invalid
//   - ErrAddressKeyMismatch if o ships elsewhere
func (c *ConsolidatedOrder) Absorb(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Key() != c.Key() {
		return fmt.Errorf("%w: %s into %s", ErrAddressKeyMismatch, o.ID(), c.Reference())
	}

	c.orderIDs = append(c.orderIDs, o.ID())
	c.itemCount += o.ItemCount()
	c.value = c.value.Add(o.Value())
	if o.ShippingMethod().IsExpedited() {
		c.shippingMethod = o.ShippingMethod()
	}
	return nil
}

// Reference returns the representative order id, used as shipment reference.
func (c *ConsolidatedOrder) Reference() string {
	return c.representative.ID()
}

// Representative returns the first order seen for the address.
func (c *ConsolidatedOrder) Representative() *Order {
	return c.representative
}

// OrderIDs returns every merged order id in absorption order, representative first.
func (c *ConsolidatedOrder) OrderIDs() []string {
	return slices.Clone(c.orderIDs)
}

// Key returns the shared address key.
func (c *ConsolidatedOrder) Key() AddressKey {
	return c.representative.Key()
}

// Destination returns the representative's address.
func (c *ConsolidatedOrder) Destination() Destination {
	return c.representative.Destination()
}

// RecipientName returns the representative's recipient name.
func (c *ConsolidatedOrder) RecipientName() string {
	return c.representative.RecipientName()
}

// ItemCount returns the summed item count.
func (c *ConsolidatedOrder) ItemCount() int {
	return c.itemCount
}

// Value returns the summed merchandise value.
func (c *ConsolidatedOrder) Value() kernel.Money {
	return c.value
}

// ShippingMethod returns the reconciled shipping method.
func (c *ConsolidatedOrder) ShippingMethod() ShippingMethod {
	return c.shippingMethod
}
