package services

import (
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
)

// OrderMerger consolidates orders bound for the same address.
//
// Algorithm:
//   - orders are visited in file order
//   - an order id already seen is skipped, so duplicate rows count once
//   - the first order for an AddressKey becomes the representative
//   - later orders for the key are absorbed: counts and values summed,
//     expedited shipping methods overwrite the reconciled method
//   - output keeps first-seen key order
type OrderMerger struct{}

func NewOrderMerger() OrderMerger {
	return OrderMerger{}
}

// Merge returns the consolidated orders and, keyed by representative order id,
// every order id merged into each of them.
func (OrderMerger) Merge(orders []*order.Order) ([]*order.ConsolidatedOrder, map[string][]string, error) {
	var (
		consolidated []*order.ConsolidatedOrder
		byKey        = make(map[order.AddressKey]*order.ConsolidatedOrder)
		seenIDs      = make(map[string]struct{}, len(orders))
	)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, nil, err
		}
		if _, dup := seenIDs[o.ID()]; dup {
			continue
		}
		seenIDs[o.ID()] = struct{}{}

		if existing, ok := byKey[o.Key()]; ok {
			if err := existing.Absorb(o); err != nil {
				return nil, nil, err
			}
			continue
		}

		c, err := order.NewConsolidatedOrder(o)
		if err != nil {
			return nil, nil, err
		}
		byKey[o.Key()] = c
		consolidated = append(consolidated, c)
	}

	mergeMap := make(map[string][]string, len(consolidated))
	for _, c := range consolidated {
		mergeMap[c.Reference()] = c.OrderIDs()
	}

	return consolidated, mergeMap, nil
}
