package orderexport_test

import (
	"strings"
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/orderexport"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Order #,FirstName,LastName,Address1,Address2,City,State,PostalCode,Country,Item Count,Value Of Products,Shipping Method\n"

func TestReader_Read(t *testing.T) {
	input := "\xEF\xBB\xBF" + header +
		"1001,Ada,Lovelace,12 Main St,,Boston,MA,2134,US,3,$9.99,Standard\n" +
		"1002,Ada,Lovelace,12 Main St,Apt 4 ,Boston,MA,02134,US,1,\"$1,200.00\",Expedited Priority\n" +
		",,,,,,,,,4,\"$1,209.99\",\n"

	records, err := orderexport.NewReader().Read(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, order.Record{
		Line: 1, OrderID: "1001", FirstName: "Ada", LastName: "Lovelace",
		Address1: "12 Main St", City: "Boston", State: "MA", PostalCode: "2134",
		Country: "US", ItemCount: "3", Value: "$9.99", ShippingMethod: "Standard",
	}, records[0])
	assert.Equal(t, "Apt 4 ", records[1].Address2)
	assert.Equal(t, "$1,200.00", records[1].Value)
	assert.Equal(t, 3, records[2].Line)
	assert.True(t, records[2].IsFooter())
}

func TestReader_Read_ReorderedAndShortRows(t *testing.T) {
	input := "Shipping Method,Order #,FirstName,LastName,Address1,City,State,PostalCode,Item Count,Value Of Products\n" +
		"Standard,2001,Bo,Peep,1 Farm Rd,Denver,CO,80202,2,4.00\n" +
		"Standard,2002\n"

	records, err := orderexport.NewReader().Read(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2001", records[0].OrderID)
	assert.Equal(t, "Standard", records[0].ShippingMethod)
	assert.Empty(t, records[0].Address2)
	assert.Empty(t, records[0].Country)
	assert.Equal(t, "2002", records[1].OrderID)
	assert.Empty(t, records[1].City)
}

func TestReader_Read_MissingColumns(t *testing.T) {
	_, err := orderexport.NewReader().Read(strings.NewReader("Order #,FirstName\n1,Ada\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), orderexport.ColumnPostalCode)
}

func TestReader_Read_Empty(t *testing.T) {
	_, err := orderexport.NewReader().Read(strings.NewReader(""))

	assert.ErrorIs(t, err, orderexport.ErrEmptyExport)
}
