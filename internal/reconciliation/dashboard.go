package reconciliation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type bucket struct {
	count int
	total decimal.Decimal
}

func (b *bucket) add(amount float64) {
	b.count++
	b.total = b.total.Add(toDecimal(amount))
}

func (b bucket) amount() float64 {
	return b.total.InexactFloat64()
}

type hoursBucket struct {
	count int
	timed int
	hours decimal.Decimal
}

// ComputeDashboardMetrics calcula os indicadores do painel sobre os pedidos
// conciliados, opcionalmente filtrados pela data do pedido. Todos os
// percentuais usam o total de pedidos filtrados como base, exceto a perda, que
// usa a receita projetada.
func ComputeDashboardMetrics(orders []domain.UnifiedOrder, from, to *time.Time) domain.MetricsSnapshot {
	filtered := filterByDate(orders, from, to)

	var all, actual, lost, pending bucket
	var refunded, rto, cancelled, inTransit, notShipped bucket
	var dispatchTotal hoursBucket

	payments := map[domain.PaymentMode]*bucket{}
	deliveries := map[domain.DeliveryStatus]*bucket{}
	dispatches := map[domain.DispatchCategory]*hoursBucket{}

	for _, o := range filtered {
		all.add(o.TotalAmount)

		switch o.RevenueCategory {
		case domain.RevenueActual:
			actual.add(o.TotalAmount)
		case domain.RevenuePending:
			pending.add(o.TotalAmount)
		default:
			lost.add(o.TotalAmount)
		}

		if o.IsRefunded {
			refunded.add(o.TotalAmount)
		}
		if o.IsRTO {
			rto.add(o.TotalAmount)
		}
		if o.IsCancelled && !o.IsRTO {
			cancelled.add(o.TotalAmount)
		}
		if o.IsInTransit {
			inTransit.add(o.TotalAmount)
		}
		if o.IsNotShipped {
			notShipped.add(o.TotalAmount)
		}

		if o.PaymentMode != "" {
			b, ok := payments[o.PaymentMode]
			if !ok {
				b = &bucket{}
				payments[o.PaymentMode] = b
			}
			b.add(o.TotalAmount)
		}

		status := o.DeliveryStatus
		if status == "" {
			status = domain.DeliveryStatusUnknown
		}
		d, ok := deliveries[status]
		if !ok {
			d = &bucket{}
			deliveries[status] = d
		}
		d.add(o.TotalAmount)

		category := o.DispatchCategory
		if category == "" {
			category = domain.DispatchNotDispatched
		}
		h, ok := dispatches[category]
		if !ok {
			h = &hoursBucket{}
			dispatches[category] = h
		}
		h.count++
		if o.DispatchHours != nil {
			h.timed++
			h.hours = h.hours.Add(toDecimal(*o.DispatchHours))
			dispatchTotal.timed++
			dispatchTotal.hours = dispatchTotal.hours.Add(toDecimal(*o.DispatchHours))
		}
	}

	total := all.count
	snapshot := domain.MetricsSnapshot{
		TotalOrders:      total,
		ProjectedRevenue: all.amount(),
		ProjectedAOV:     average(all.total, all.count),
		ActualRevenue:    actual.amount(),
		ActualAOV:        average(actual.total, actual.count),
		LostRevenue:      lost.amount(),
		PendingRevenue:   pending.amount(),
		DeliveryRate:     percentage(actual.count, total),
		RTORate:          percentage(rto.count, total),

		PaymentBreakdown:  make(map[domain.PaymentMode]domain.BreakdownEntry, len(payments)),
		DeliveryBreakdown: make(map[domain.DeliveryStatus]domain.BreakdownEntry, len(deliveries)),
		DispatchBreakdown: make(map[domain.DispatchCategory]domain.DispatchBreakdownEntry, len(dispatches)),

		DeliveredOrders:  actual.count,
		LostOrders:       lost.count,
		PendingOrders:    pending.count,
		InTransitOrders:  inTransit.count,
		InTransitAmount:  inTransit.amount(),
		RTOOrders:        rto.count,
		RTOAmount:        rto.amount(),
		CancelledOrders:  cancelled.count,
		CancelledAmount:  cancelled.amount(),
		NotShippedOrders: notShipped.count,
		NotShippedAmount: notShipped.amount(),
		RefundedOrders:   refunded.count,
		RefundedAmount:   refunded.amount(),
		AvgDispatchHours: averageHours(dispatchTotal),
	}

	if all.total.IsPositive() {
		snapshot.LostPercentage = lost.total.Div(all.total).Mul(hundred).InexactFloat64()
	}

	for mode, b := range payments {
		snapshot.PaymentBreakdown[mode] = domain.BreakdownEntry{
			Count:      b.count,
			Total:      b.amount(),
			Percentage: percentage(b.count, total),
		}
	}

	for status, b := range deliveries {
		snapshot.DeliveryBreakdown[status] = domain.BreakdownEntry{
			Count:      b.count,
			Total:      b.amount(),
			Percentage: percentage(b.count, total),
		}
	}

	for category, h := range dispatches {
		snapshot.DispatchBreakdown[category] = domain.DispatchBreakdownEntry{
			Count:      h.count,
			AvgHours:   averageHours(*h),
			Percentage: percentage(h.count, total),
		}
	}

	return snapshot
}

// toDecimal converte valores vindos de planilha; NaN e infinito contam como zero
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func average(sum decimal.Decimal, count int) float64 {
	if count <= 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(count))).InexactFloat64()
}

// averageHours arredonda para uma casa; nil quando não há pedido despachado
func averageHours(h hoursBucket) *float64 {
	if h.timed == 0 {
		return nil
	}
	avg := h.hours.Div(decimal.NewFromInt(int64(h.timed))).Round(1).InexactFloat64()
	return &avg
}
