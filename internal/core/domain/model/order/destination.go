package order

import (
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
)

// Destination is the ship-to address of an order exactly as exported.
type Destination struct {
	Street1    string
	Street2    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// AddressKey is the grouping key for consolidation: the ordered tuple
// (street1, street2, city, state, postal code) with raw, unnormalized values.
// Two orders with equal keys ship together regardless of recipient name.
//
// Being a comparable struct, AddressKey can be used directly as a map key;
// no separator is involved so field boundaries can never collide.
type AddressKey struct {
	Street1    string
	Street2    string
	City       string
	State      string
	PostalCode string
}

// Key derives the grouping key for the destination.
func (d Destination) Key() AddressKey {
	return AddressKey{
		Street1:    d.Street1,
		Street2:    d.Street2,
		City:       d.City,
		State:      d.State,
		PostalCode: d.PostalCode,
	}
}

// Address converts the destination into a label address for the recipient.
// The postal code goes through kernel.NormalizePostalCode.
func (d Destination) Address(recipient string) kernel.Address {
	return kernel.Address{
		Name:    recipient,
		Street1: strings.TrimSpace(d.Street1),
		Street2: strings.TrimSpace(d.Street2),
		City:    strings.TrimSpace(d.City),
		State:   strings.TrimSpace(d.State),
		Zip:     kernel.NormalizePostalCode(d.PostalCode),
		Country: strings.TrimSpace(d.Country),
	}
}

// String renders the key in the historical "-" joined form. Logging only.
func (k AddressKey) String() string {
	return strings.Join([]string{k.Street1, k.Street2, k.City, k.State, k.PostalCode}, "-")
}
