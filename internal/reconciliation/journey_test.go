package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestSearchJourney(t *testing.T) {
	orders := []domain.UnifiedOrder{
		{OrderID: "1001", CustomerPhone: "9876543210", CustomerEmail: "ana@loja.com", OrderDate: at(1, 10), PaymentMode: domain.PaymentModeCOD, DeliveryStatus: domain.DeliveryStatusDelivered},
		{OrderID: "1002", CustomerPhone: "9123456780", CustomerEmail: "bia@loja.com", OrderDate: at(3, 10), PaymentMode: domain.PaymentModePrepaid, DeliveryStatus: domain.DeliveryStatusRTO},
		{OrderID: "1003", CustomerEmail: "ANA.S@LOJA.COM", OrderDate: at(2, 10), PaymentMode: domain.PaymentModePrepaid, DeliveryStatus: domain.DeliveryStatusDelivered},
		{OrderID: "1004", PaymentMode: domain.PaymentModePrepaid, DeliveryStatus: domain.DeliveryStatusNotShipped},
	}

	tests := []struct {
		name     string
		filters  domain.JourneyFilters
		expected []string
		total    int
	}{
		{name: "Sem filtros ordena do mais recente e deixa sem data por último", filters: domain.JourneyFilters{}, expected: []string{"1002", "1003", "1001", "1004"}, total: 4},
		{name: "Busca por email ignora caixa", filters: domain.JourneyFilters{Search: " ana "}, expected: []string{"1003", "1001"}, total: 2},
		{name: "Busca por telefone", filters: domain.JourneyFilters{Search: "91234"}, expected: []string{"1002"}, total: 1},
		{name: "Filtro por forma de pagamento", filters: domain.JourneyFilters{PaymentMode: "cod"}, expected: []string{"1001"}, total: 1},
		{name: "Filtro all é ignorado", filters: domain.JourneyFilters{PaymentMode: "all", DeliveryStatus: "delivered"}, expected: []string{"1003", "1001"}, total: 2},
		{name: "Filtro por data exclui pedidos sem data", filters: domain.JourneyFilters{StartDate: at(2, 0)}, expected: []string{"1002", "1003"}, total: 2},
		{name: "Paginação respeita limite e deslocamento", filters: domain.JourneyFilters{Limit: 2, Offset: 1}, expected: []string{"1003", "1001"}, total: 4},
		{name: "Deslocamento além do total devolve página vazia", filters: domain.JourneyFilters{Offset: 10}, expected: []string{}, total: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := SearchJourney(orders, tt.filters)

			ids := make([]string, 0, len(page.Orders))
			for _, o := range page.Orders {
				ids = append(ids, o.OrderID)
			}
			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestNormalizeJourneyFilters(t *testing.T) {
	f := NormalizeJourneyFilters(domain.JourneyFilters{Offset: -3, DeliveryStatus: "ALL"})
	require.Equal(t, DefaultJourneyLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
	assert.Empty(t, f.DeliveryStatus)
}
