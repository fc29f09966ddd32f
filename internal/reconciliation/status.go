package reconciliation

import (
	"strings"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// status exatos do relatório da transportadora
var carrierStatuses = map[string]domain.DeliveryStatus{
	"DELIVERED":            domain.DeliveryStatusDelivered,
	"SHIPMENT_DELAYED":     domain.DeliveryStatusInTransit,
	"OUT_FOR_DELIVERY":     domain.DeliveryStatusInTransit,
	"FAILED_DELIVERY":      domain.DeliveryStatusInTransit,
	"CANCELLED_ORDER":      domain.DeliveryStatusCancelled,
	"RTO_DELIVERED":        domain.DeliveryStatusRTO,
	"RTO_REQUESTED":        domain.DeliveryStatusRTO,
	"RTO_INTRANSIT":        domain.DeliveryStatusRTO,
	"RTO_OUT_FOR_DELIVERY": domain.DeliveryStatusRTO,
}

// MapCarrierStatus normaliza o status bruto da transportadora. Status fora da
// tabela caem nas regras por substring e, por fim, em unknown.
func MapCarrierStatus(raw string) domain.DeliveryStatus {
	status := strings.ToUpper(strings.TrimSpace(raw))

	if mapped, ok := carrierStatuses[status]; ok {
		return mapped
	}

	switch {
	case strings.Contains(status, "DELIVER") && !strings.Contains(status, "RTO"):
		return domain.DeliveryStatusDelivered
	case strings.Contains(status, "RTO"):
		return domain.DeliveryStatusRTO
	case strings.Contains(status, "CANCEL"):
		return domain.DeliveryStatusCancelled
	case strings.Contains(status, "TRANSIT"), strings.Contains(status, "DELAY"), strings.Contains(status, "PICKUP"):
		return domain.DeliveryStatusInTransit
	default:
		return domain.DeliveryStatusUnknown
	}
}

// ClassifyPaymentMethod descobre a forma de pagamento original do pedido.
// Reembolso e cancelamento não são formas de pagamento: nesses casos o gateway
// decide entre prepaid e cod.
func ClassifyPaymentMethod(financialStatus domain.FinancialStatus, paymentMethod string) domain.PaymentMode {
	status := domain.FinancialStatus(strings.ToLower(strings.TrimSpace(string(financialStatus))))
	method := strings.ToLower(strings.TrimSpace(paymentMethod))

	if strings.Contains(method, "cod") || strings.Contains(method, "cash") {
		return domain.PaymentModeCOD
	}

	switch status {
	case domain.FinancialStatusPaid:
		return domain.PaymentModePrepaid
	case domain.FinancialStatusPartiallyPaid:
		return domain.PaymentModePartial
	case domain.FinancialStatusPending:
		return domain.PaymentModeCOD
	case domain.FinancialStatusVoided, domain.FinancialStatusRefunded, domain.FinancialStatusPartiallyRefunded:
		if isPrepaidGateway(method) {
			return domain.PaymentModePrepaid
		}
		return domain.PaymentModeCOD
	default:
		if strings.Contains(method, "razorpay") {
			return domain.PaymentModePrepaid
		}
		return domain.PaymentModeUnknown
	}
}

func isPrepaidGateway(method string) bool {
	for _, gateway := range []string{"razorpay", "upi", "card"} {
		if strings.Contains(method, gateway) {
			return true
		}
	}
	return false
}

// NormalizeFinancialStatus deixa o status financeiro em minúsculas
func NormalizeFinancialStatus(raw string) domain.FinancialStatus {
	return domain.FinancialStatus(strings.ToLower(strings.TrimSpace(raw)))
}
