package services_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordNormalizer_Normalize(t *testing.T) {
	normalizer := services.NewRecordNormalizer()

	t.Run("should parse a data row keeping the raw address", func(t *testing.T) {
		dest := bostonAddress
		dest.Street1 = "12 Main St "

		o, err := normalizer.Normalize(record(1, "1001", dest, "3", "$12.40", "Standard"))

		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "1001", o.ID())
		assert.Equal(t, 3, o.ItemCount())
		assert.Equal(t, "12.40", o.Value().String())
		assert.Equal(t, "12 Main St ", o.Destination().Street1)
		assert.Equal(t, "2134", o.Destination().PostalCode)
	})

	t.Run("should drop the footer row silently", func(t *testing.T) {
		o, err := normalizer.Normalize(order.Record{Line: 9, ItemCount: "42", Value: "310.00"})

		assert.NoError(t, err)
		assert.Nil(t, o)
	})

	tests := map[string]order.Record{
		"non integer item count": record(2, "1002", bostonAddress, "three", "1.00", "Standard"),
		"negative item count":    record(2, "1002", bostonAddress, "-1", "1.00", "Standard"),
		"missing value":          record(2, "1002", bostonAddress, "1", "", "Standard"),
		"non decimal value":      record(2, "1002", bostonAddress, "1", "ten", "Standard"),
		"negative value":         record(2, "1002", bostonAddress, "1", "-4", "Standard"),
		"missing city":           record(2, "1002", order.Destination{Street1: "1 A St", State: "MA", PostalCode: "02134"}, "1", "1.00", "Standard"),
	}
	for name, r := range tests {
		t.Run("should reject "+name, func(t *testing.T) {
			o, err := normalizer.Normalize(r)

			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrRowIsMalformed)
			var rowErr *errs.RowIsMalformedError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, 2, rowErr.Line)
			assert.Equal(t, "1002", rowErr.OrderID)
		})
	}
}

func TestRecordNormalizer_NormalizeAll(t *testing.T) {
	records := []order.Record{
		record(1, "1001", bostonAddress, "1", "1.00", "Standard"),
		record(2, "1002", bostonAddress, "x", "1.00", "Standard"),
		record(3, "1003", denverAddress, "2", "3.00", "Standard"),
		{Line: 4},
	}

	orders, rejected := services.NewRecordNormalizer().NormalizeAll(records)

	require.Len(t, orders, 2)
	assert.Equal(t, "1001", orders[0].ID())
	assert.Equal(t, "1003", orders[1].ID())
	require.Len(t, rejected, 1)
	assert.Equal(t, 2, rejected[0].Line)
}
