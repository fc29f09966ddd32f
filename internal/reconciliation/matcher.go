package reconciliation

import (
	"strings"
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const noOrdersMessage = "No orders found. Upload the orders export first."

// RunReconciliation concilia os pedidos com os envios pelo order_id normalizado
func RunReconciliation(orders []domain.OrderRecord, shipments []domain.ShipmentRecord) []domain.UnifiedOrder {
	unified, _ := Match(orders, shipments)
	return unified
}

// Match concilia pedidos e envios e devolve também o resumo da execução.
// Pedidos sem order_id são ignorados. Para order_id repetido vale a primeira
// ocorrência, tanto em pedidos quanto em envios.
func Match(orders []domain.OrderRecord, shipments []domain.ShipmentRecord) ([]domain.UnifiedOrder, domain.MatchSummary) {
	byOrderID := make(map[string]*domain.ShipmentRecord, len(shipments))
	for i := range shipments {
		id, ok := NormalizeOrderID(shipments[i].OrderID)
		if !ok {
			continue
		}
		if _, exists := byOrderID[id]; !exists {
			byOrderID[id] = &shipments[i]
		}
	}

	seen := make(map[string]struct{}, len(orders))
	unified := make([]domain.UnifiedOrder, 0, len(orders))
	var summary domain.MatchSummary

	for _, order := range orders {
		id, ok := NormalizeOrderID(order.OrderID)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		shipment := byOrderID[id]
		if shipment != nil {
			summary.Matched++
		} else {
			summary.NotShipped++
		}

		unified = append(unified, unify(id, order, shipment))
	}

	summary.TotalOrders = len(unified)
	if summary.TotalOrders == 0 {
		summary.Message = noOrdersMessage
	}

	return unified, summary
}

func unify(orderID string, order domain.OrderRecord, shipment *domain.ShipmentRecord) domain.UnifiedOrder {
	u := domain.UnifiedOrder{
		OrderID:         orderID,
		CustomerEmail:   order.Email,
		OrderDate:       order.CreatedAt,
		TotalAmount:     order.Total,
		Subtotal:        order.Subtotal,
		DiscountAmount:  order.DiscountAmount,
		LineItemNames:   strings.Join(order.LineItemNames(), ", "),
		TotalQuantity:   order.TotalQuantity(),
		LineItems:       order.LineItems,
		FinancialStatus: NormalizeFinancialStatus(string(order.FinancialStatus)),
		PaymentMode:     order.PaymentMode,
		DeliveryStatus:  domain.DeliveryStatusNotShipped,
	}

	if u.PaymentMode == "" {
		u.PaymentMode = ClassifyPaymentMethod(order.FinancialStatus, order.PaymentMethodRaw)
	}

	var pickup *time.Time
	if shipment != nil {
		u.AWB = shipment.AWB
		u.DeliveryStatus = shipment.Status
		if u.DeliveryStatus == "" {
			u.DeliveryStatus = MapCarrierStatus(shipment.StatusRaw)
		}
		u.DeliveryStatusRaw = shipment.StatusRaw
		u.CourierPartner = shipment.CourierPartner
		u.PickupDate = shipment.PickupAt
		u.DeliveryDate = shipment.DeliveredAt
		u.RTODate = shipment.RTODeliveredAt
		pickup = shipment.PickupAt
	}

	u.IsRefunded = u.FinancialStatus == domain.FinancialStatusRefunded ||
		u.FinancialStatus == domain.FinancialStatusPartiallyRefunded

	if u.FinancialStatus == domain.FinancialStatusVoided || u.DeliveryStatus == domain.DeliveryStatusCancelled {
		u.IsCancelled = true
		u.DeliveryStatus = domain.DeliveryStatusCancelled
	}

	u.DispatchHours = DispatchHours(order.CreatedAt, pickup)
	u.DispatchCategory = CategorizeDispatch(u.DispatchHours)

	u.IsDelivered = u.DeliveryStatus == domain.DeliveryStatusDelivered
	u.IsInTransit = u.DeliveryStatus == domain.DeliveryStatusInTransit
	u.IsRTO = u.DeliveryStatus == domain.DeliveryStatusRTO
	u.IsNotShipped = u.DeliveryStatus == domain.DeliveryStatusNotShipped
	u.RevenueCategory = ClassifyRevenue(u)

	fillCustomer(&u, order, shipment)
	return u
}

// ClassifyRevenue separa receita realizada, pendente e perdida
func ClassifyRevenue(u domain.UnifiedOrder) domain.RevenueCategory {
	switch {
	case u.IsDelivered && !u.IsRefunded:
		return domain.RevenueActual
	case u.IsInTransit || u.IsNotShipped:
		return domain.RevenuePending
	default:
		return domain.RevenueLost
	}
}

// fillCustomer prefere os dados do pedido e completa com os do envio
func fillCustomer(u *domain.UnifiedOrder, order domain.OrderRecord, shipment *domain.ShipmentRecord) {
	var drop domain.ShipmentRecord
	if shipment != nil {
		drop = *shipment
	}

	u.CustomerPhone = firstNonEmpty(order.Phone, order.BillingPhone, drop.DropPhone)
	u.CustomerName = firstNonEmpty(order.ShippingName, order.BillingName, drop.DropName)
	u.CustomerCity = firstNonEmpty(order.ShippingCity, drop.DropCity)
	u.CustomerState = firstNonEmpty(order.ShippingState, drop.DropState)
	u.CustomerPincode = firstNonEmpty(order.ShippingPincode, drop.DropPincode)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
