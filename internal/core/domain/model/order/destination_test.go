package order_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestDestination_Key(t *testing.T) {
	t.Run("recipient independent and country independent", func(t *testing.T) {
		a := validDestination()
		b := validDestination()
		b.Country = "USA"

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("trailing whitespace splits shipments", func(t *testing.T) {
		a := validDestination()
		b := validDestination()
		b.Street1 += " "

		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("field boundaries cannot collide", func(t *testing.T) {
		// Under "-" concatenation both would render as "1-2-3-4-5-".
		a := order.Destination{Street1: "1-2", Street2: "3", City: "4", State: "5", PostalCode: ""}
		b := order.Destination{Street1: "1", Street2: "2-3", City: "4", State: "5", PostalCode: ""}

		assert.Equal(t, a.Key().String(), b.Key().String())
		assert.NotEqual(t, a.Key(), b.Key())
	})
}

func TestDestination_Address(t *testing.T) {
	d := validDestination()
	d.City = " Boston "

	addr := d.Address("Ada Lovelace")

	assert.Equal(t, "Ada Lovelace", addr.Name)
	assert.Equal(t, "Boston", addr.City)
	assert.Equal(t, "02134", addr.Zip)
	assert.Equal(t, "US", addr.Country)
}
