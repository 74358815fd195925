package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// RecordNormalizer turns raw export rows into orders.
//
// Business rules:
//   - rows with an empty order id are the export footer and are dropped silently
//   - rows missing keying fields or carrying unparsable totals are rejected
//     with *errs.RowIsMalformedError, the rest of the file is kept
//   - address fields are kept raw so consolidation keys on what was exported
type RecordNormalizer struct{}

func NewRecordNormalizer() RecordNormalizer {
	return RecordNormalizer{}
}

// Normalize parses one row. A footer row yields (nil, nil).
func (RecordNormalizer) Normalize(r order.Record) (*order.Order, error) {
	id := strings.TrimSpace(r.OrderID)
	if id == "" {
		return nil, nil
	}

	itemCount, err := strconv.Atoi(strings.TrimSpace(r.ItemCount))
	if err != nil {
		return nil, errs.NewRowIsMalformedError(r.Line, id,
			errs.NewValueIsInvalidErrorWithCause("item count", err))
	}

	value, err := kernel.MoneyFromString(r.Value)
	if err != nil {
		return nil, errs.NewRowIsMalformedError(r.Line, id, err)
	}

	o, err := order.NewOrder(id, r.FirstName, r.LastName, order.Destination{
		Street1:    r.Address1,
		Street2:    r.Address2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}, itemCount, value, order.ShippingMethod(r.ShippingMethod))
	if err != nil {
		return nil, errs.NewRowIsMalformedError(r.Line, id, err)
	}

	return o, nil
}

// NormalizeAll parses every row in file order. Footer rows are dropped,
// malformed rows are returned separately and do not stop the run.
func (n RecordNormalizer) NormalizeAll(records []order.Record) ([]*order.Order, []*errs.RowIsMalformedError) {
	var (
		orders   = make([]*order.Order, 0, len(records))
		rejected []*errs.RowIsMalformedError
	)

	for _, r := range records {
		o, err := n.Normalize(r)
		if err != nil {
			var rowErr *errs.RowIsMalformedError
			if !errors.As(err, &rowErr) {
				rowErr = errs.NewRowIsMalformedError(r.Line, r.OrderID, err)
			}
			rejected = append(rejected, rowErr)
			continue
		}
		if o == nil {
			continue
		}
		orders = append(orders, o)
	}

	return orders, rejected
}
