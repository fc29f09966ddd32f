package reconciliation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestComputeSKUSales(t *testing.T) {
	orders := []domain.UnifiedOrder{
		{
			OrderID:   "1",
			OrderDate: at(1, 10),
			LineItems: []domain.LineItem{
				{Name: "Camiseta", SKU: "CAM-01", Quantity: 2, Price: 499.5},
				{Name: "Boné", Quantity: 1, Price: 300},
			},
		},
		{
			OrderID:   "2",
			OrderDate: at(2, 10),
			LineItems: []domain.LineItem{
				{Name: "Camiseta", SKU: "CAM-01", Quantity: 1, Price: 499.5},
				{SKU: "MEIA-01", Quantity: 1, Price: 100},
			},
		},
		{
			OrderID:   "3",
			OrderDate: at(9, 10),
			LineItems: []domain.LineItem{{Name: "Camiseta", SKU: "CAM-01", Quantity: 5, Price: 499.5}},
		},
	}

	report := ComputeSKUSales(orders, nil, at(5, 0))

	assert.Equal(t, 5, report.TotalQuantity)
	require.Len(t, report.Items, 3)

	top := report.Items[0]
	assert.Equal(t, "CAM-01", top.SKU)
	assert.Equal(t, 3, top.TotalQty)
	assert.Equal(t, 2, top.OrderCount)
	assert.Equal(t, 1498.5, top.Revenue)
	assert.Equal(t, 60.0, top.Percentage)

	assert.Equal(t, "MEIA-01", report.Items[1].SKU)
	assert.Equal(t, unknownItem, report.Items[1].ItemName)
	assert.Equal(t, noSKU, report.Items[2].SKU)
	assert.Equal(t, "Boné", report.Items[2].ItemName)

	empty := ComputeSKUSales(nil, nil, nil)
	assert.Equal(t, 0, empty.TotalQuantity)
	assert.Empty(t, empty.Items)
}

func TestComputeSKUSales_PrecoNaoFinito(t *testing.T) {
	orders := []domain.UnifiedOrder{
		{
			OrderID: "1",
			LineItems: []domain.LineItem{
				{Name: "Camiseta", SKU: "CAM-01", Quantity: 1, Price: math.Inf(1)},
				{Name: "Camiseta", SKU: "CAM-01", Quantity: 2, Price: 100},
				{Name: "Boné", SKU: "BON-01", Quantity: 1, Price: math.NaN()},
			},
		},
	}

	var report domain.SKUSalesReport
	require.NotPanics(t, func() {
		report = ComputeSKUSales(orders, nil, nil)
	})

	require.Len(t, report.Items, 2)
	assert.Equal(t, "CAM-01", report.Items[0].SKU)
	assert.Equal(t, 200.0, report.Items[0].Revenue)
	assert.Equal(t, 0.0, report.Items[1].Revenue)
}
