package reconciliation

import (
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// InDateRange compara apenas a data do pedido com o intervalo fechado [from, to].
// Com algum filtro informado, pedidos sem data ficam de fora.
func InDateRange(orderDate, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if orderDate == nil || orderDate.IsZero() {
		return false
	}

	day := dateOnly(*orderDate)
	if from != nil && day.Before(dateOnly(*from)) {
		return false
	}
	if to != nil && day.After(dateOnly(*to)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func filterByDate(orders []domain.UnifiedOrder, from, to *time.Time) []domain.UnifiedOrder {
	if from == nil && to == nil {
		return orders
	}

	filtered := make([]domain.UnifiedOrder, 0, len(orders))
	for _, o := range orders {
		if InDateRange(o.OrderDate, from, to) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
