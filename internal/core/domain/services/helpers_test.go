package services_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	bostonAddress = order.Destination{Street1: "12 Main St", City: "Boston", State: "MA", PostalCode: "2134", Country: "US"}
	denverAddress = order.Destination{Street1: "400 Elm Ave", Street2: "Apt 2", City: "Denver", State: "CO", PostalCode: "80203", Country: "US"}
)

func mustOrder(t *testing.T, id string, dest order.Destination, count int, value string, method string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "Ada", "Lovelace", dest, count, kernel.MustMoney(value), order.ShippingMethod(method))
	require.NoError(t, err)
	return o
}

func mustConsolidated(t *testing.T, count int, value string, method string) *order.ConsolidatedOrder {
	t.Helper()
	c, err := order.NewConsolidatedOrder(mustOrder(t, "1001", bostonAddress, count, value, method))
	require.NoError(t, err)
	return c
}

func record(line int, id string, dest order.Destination, count, value, method string) order.Record {
	return order.Record{
		Line:           line,
		OrderID:        id,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Address1:       dest.Street1,
		Address2:       dest.Street2,
		City:           dest.City,
		State:          dest.State,
		PostalCode:     dest.PostalCode,
		Country:        dest.Country,
		ItemCount:      count,
		Value:          value,
		ShippingMethod: method,
	}
}

func permutations[T any](items []T) [][]T {
	if len(items) <= 1 {
		return [][]T{append([]T(nil), items...)}
	}
	var result [][]T
	for i := range items {
		rest := make([]T, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, p := range permutations(rest) {
			result = append(result, append([]T{items[i]}, p...))
		}
	}
	return result
}
