package reconciliation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const (
	noSKU       = "No SKU"
	unknownItem = "Unknown"
)

type skuKey struct {
	sku  string
	name string
}

type skuAccumulator struct {
	qty     int
	orders  map[string]struct{}
	revenue decimal.Decimal
}

// ComputeSKUSales agrega os itens dos pedidos conciliados por SKU e nome.
// O percentual é a fatia de cada SKU na quantidade total vendida.
func ComputeSKUSales(orders []domain.UnifiedOrder, from, to *time.Time) domain.SKUSalesReport {
	groups := map[skuKey]*skuAccumulator{}
	totalQty := 0

	for _, o := range filterByDate(orders, from, to) {
		for _, item := range o.LineItems {
			key := skuKey{sku: item.SKU, name: item.Name}
			if key.sku == "" {
				key.sku = noSKU
			}
			if key.name == "" {
				key.name = unknownItem
			}

			acc, ok := groups[key]
			if !ok {
				acc = &skuAccumulator{orders: map[string]struct{}{}}
				groups[key] = acc
			}

			acc.qty += item.Quantity
			acc.orders[o.OrderID] = struct{}{}
			acc.revenue = acc.revenue.Add(toDecimal(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
			totalQty += item.Quantity
		}
	}

	items := make([]domain.SKUSales, 0, len(groups))
	for key, acc := range groups {
		items = append(items, domain.SKUSales{
			SKU:        key.sku,
			ItemName:   key.name,
			TotalQty:   acc.qty,
			OrderCount: len(acc.orders),
			Revenue:    acc.revenue.InexactFloat64(),
			Percentage: percentage(acc.qty, totalQty),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalQty != items[j].TotalQty {
			return items[i].TotalQty > items[j].TotalQty
		}
		if items[i].SKU != items[j].SKU {
			return items[i].SKU < items[j].SKU
		}
		return items[i].ItemName < items[j].ItemName
	})

	return domain.SKUSalesReport{Items: items, TotalQuantity: totalQty}
}
