package reconciliation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func dashboardFixture() []domain.UnifiedOrder {
	orders := []domain.OrderRecord{
		order("1", domain.FinancialStatusPaid, 1000, at(1, 10)),
		order("2", domain.FinancialStatusPaid, 2000, at(2, 10)),
		order("3", domain.FinancialStatusPending, 500, at(3, 10)),
		order("4", domain.FinancialStatusPending, 1500, at(4, 10)),
		order("5", domain.FinancialStatusVoided, 1000, at(5, 10)),
	}
	orders[2].PaymentMode = domain.PaymentModeCOD
	orders[3].PaymentMode = domain.PaymentModeCOD

	shipments := []domain.ShipmentRecord{
		shipment("1", "A1", domain.DeliveryStatusDelivered, at(1, 20)),
		shipment("2", "A2", domain.DeliveryStatusInTransit, at(4, 10)),
		shipment("4", "A4", domain.DeliveryStatusRTO, at(5, 16)),
	}

	return RunReconciliation(orders, shipments)
}

func TestComputeDashboardMetrics(t *testing.T) {
	snapshot := ComputeDashboardMetrics(dashboardFixture(), nil, nil)

	assert.Equal(t, 5, snapshot.TotalOrders)
	assert.Equal(t, 6000.0, snapshot.ProjectedRevenue)
	assert.Equal(t, 1200.0, snapshot.ProjectedAOV)

	assert.Equal(t, 1, snapshot.DeliveredOrders)
	assert.Equal(t, 1000.0, snapshot.ActualRevenue)
	assert.Equal(t, 1000.0, snapshot.ActualAOV)

	// RTO e cancelado
	assert.Equal(t, 2, snapshot.LostOrders)
	assert.Equal(t, 2500.0, snapshot.LostRevenue)
	assert.InDelta(t, 2500.0/6000.0*100, snapshot.LostPercentage, 0.0001)

	// em trânsito e não enviado
	assert.Equal(t, 2, snapshot.PendingOrders)
	assert.Equal(t, 2500.0, snapshot.PendingRevenue)

	assert.Equal(t, 20.0, snapshot.DeliveryRate)
	assert.Equal(t, 20.0, snapshot.RTORate)

	assert.Equal(t, 1, snapshot.CancelledOrders)
	assert.Equal(t, 1000.0, snapshot.CancelledAmount)
	assert.Equal(t, 1, snapshot.NotShippedOrders)
	assert.Equal(t, 500.0, snapshot.NotShippedAmount)
	assert.Equal(t, 1, snapshot.InTransitOrders)
	assert.Equal(t, 2000.0, snapshot.InTransitAmount)
	assert.Equal(t, 1, snapshot.RTOOrders)
	assert.Equal(t, 1500.0, snapshot.RTOAmount)

	require.Contains(t, snapshot.PaymentBreakdown, domain.PaymentModePrepaid)
	assert.Equal(t, 3, snapshot.PaymentBreakdown[domain.PaymentModePrepaid].Count)
	assert.Equal(t, 4000.0, snapshot.PaymentBreakdown[domain.PaymentModePrepaid].Total)
	assert.Equal(t, 60.0, snapshot.PaymentBreakdown[domain.PaymentModePrepaid].Percentage)
	assert.Equal(t, 40.0, snapshot.PaymentBreakdown[domain.PaymentModeCOD].Percentage)

	assert.Equal(t, 1, snapshot.DeliveryBreakdown[domain.DeliveryStatusCancelled].Count)
	assert.Equal(t, 1, snapshot.DeliveryBreakdown[domain.DeliveryStatusNotShipped].Count)

	// despachos: 10h, 48h e 30h
	fast := snapshot.DispatchBreakdown[domain.DispatchFast]
	assert.Equal(t, 1, fast.Count)
	require.NotNil(t, fast.AvgHours)
	assert.Equal(t, 10.0, *fast.AvgHours)

	normal := snapshot.DispatchBreakdown[domain.DispatchNormal]
	assert.Equal(t, 2, normal.Count)
	require.NotNil(t, normal.AvgHours)
	assert.Equal(t, 39.0, *normal.AvgHours)

	notDispatched := snapshot.DispatchBreakdown[domain.DispatchNotDispatched]
	assert.Equal(t, 2, notDispatched.Count)
	assert.Nil(t, notDispatched.AvgHours)
	assert.Equal(t, 40.0, notDispatched.Percentage)

	require.NotNil(t, snapshot.AvgDispatchHours)
	assert.Equal(t, 29.3, *snapshot.AvgDispatchHours)
}

func TestComputeDashboardMetrics_FiltroPorData(t *testing.T) {
	snapshot := ComputeDashboardMetrics(dashboardFixture(), at(2, 0), at(3, 23))

	assert.Equal(t, 2, snapshot.TotalOrders)
	assert.Equal(t, 2500.0, snapshot.ProjectedRevenue)
	assert.Equal(t, 2500.0, snapshot.PendingRevenue)
	assert.Equal(t, 0.0, snapshot.ActualRevenue)
}

func TestComputeDashboardMetrics_SemPedidos(t *testing.T) {
	snapshot := ComputeDashboardMetrics(nil, nil, nil)

	assert.Equal(t, 0, snapshot.TotalOrders)
	assert.Equal(t, 0.0, snapshot.ProjectedAOV)
	assert.Equal(t, 0.0, snapshot.DeliveryRate)
	assert.Equal(t, 0.0, snapshot.RTORate)
	assert.Equal(t, 0.0, snapshot.LostPercentage)
	assert.Nil(t, snapshot.AvgDispatchHours)
	assert.Empty(t, snapshot.PaymentBreakdown)
}

func TestComputeDashboardMetrics_ValoresNaoFinitos(t *testing.T) {
	orders := RunReconciliation([]domain.OrderRecord{
		order("1", domain.FinancialStatusPaid, math.Inf(1), at(1, 10)),
		order("2", domain.FinancialStatusPaid, math.NaN(), at(2, 10)),
		order("3", domain.FinancialStatusPaid, 1000, at(3, 10)),
	}, nil)

	inf := math.Inf(-1)
	orders[2].DispatchHours = &inf

	var snapshot domain.MetricsSnapshot
	require.NotPanics(t, func() {
		snapshot = ComputeDashboardMetrics(orders, nil, nil)
	})

	assert.Equal(t, 3, snapshot.TotalOrders)
	assert.Equal(t, 1000.0, snapshot.ProjectedRevenue)
	require.NotNil(t, snapshot.AvgDispatchHours)
	assert.Equal(t, 0.0, *snapshot.AvgDispatchHours)

	require.NotPanics(t, func() {
		ComputeSKUSales(orders, nil, nil)
	})
}

func TestComputeDashboardMetrics_PercentuaisNoIntervalo(t *testing.T) {
	snapshot := ComputeDashboardMetrics(dashboardFixture(), nil, nil)

	for _, entry := range snapshot.PaymentBreakdown {
		assert.GreaterOrEqual(t, entry.Percentage, 0.0)
		assert.LessOrEqual(t, entry.Percentage, 100.0)
	}
	for _, entry := range snapshot.DeliveryBreakdown {
		assert.GreaterOrEqual(t, entry.Percentage, 0.0)
		assert.LessOrEqual(t, entry.Percentage, 100.0)
	}
	for _, entry := range snapshot.DispatchBreakdown {
		assert.GreaterOrEqual(t, entry.Percentage, 0.0)
		assert.LessOrEqual(t, entry.Percentage, 100.0)
	}
}

func TestInDateRange(t *testing.T) {
	assert.True(t, InDateRange(nil, nil, nil))
	assert.False(t, InDateRange(nil, at(1, 0), nil))
	assert.True(t, InDateRange(at(3, 23), at(3, 0), at(3, 0)))
	assert.False(t, InDateRange(at(4, 0), nil, at(3, 0)))
	assert.False(t, InDateRange(at(2, 23), at(3, 0), nil))
}
