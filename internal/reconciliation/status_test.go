package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestMapCarrierStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.DeliveryStatus
	}{
		{raw: "DELIVERED", expected: domain.DeliveryStatusDelivered},
		{raw: " delivered ", expected: domain.DeliveryStatusDelivered},
		{raw: "SHIPMENT_DELAYED", expected: domain.DeliveryStatusInTransit},
		{raw: "OUT_FOR_DELIVERY", expected: domain.DeliveryStatusInTransit},
		{raw: "FAILED_DELIVERY", expected: domain.DeliveryStatusInTransit},
		{raw: "CANCELLED_ORDER", expected: domain.DeliveryStatusCancelled},
		{raw: "RTO_DELIVERED", expected: domain.DeliveryStatusRTO},
		{raw: "RTO_OUT_FOR_DELIVERY", expected: domain.DeliveryStatusRTO},
		{raw: "Partially Delivered", expected: domain.DeliveryStatusDelivered},
		{raw: "RTO_INITIATED", expected: domain.DeliveryStatusRTO},
		{raw: "ORDER_CANCELLED_BY_SELLER", expected: domain.DeliveryStatusCancelled},
		{raw: "IN_TRANSIT", expected: domain.DeliveryStatusInTransit},
		{raw: "PICKUP_PENDING", expected: domain.DeliveryStatusInTransit},
		{raw: "LOST", expected: domain.DeliveryStatusUnknown},
		{raw: "", expected: domain.DeliveryStatusUnknown},
	}

	for _, tt := range tests {
		t.Run("Status "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapCarrierStatus(tt.raw))
		})
	}
}

func TestClassifyPaymentMethod(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.FinancialStatus
		method   string
		expected domain.PaymentMode
	}{
		{name: "Gateway COD tem prioridade", status: domain.FinancialStatusPaid, method: "Cash on Delivery (COD)", expected: domain.PaymentModeCOD},
		{name: "Pago é prepaid", status: "Paid", method: "Razorpay", expected: domain.PaymentModePrepaid},
		{name: "Parcialmente pago é partial", status: domain.FinancialStatusPartiallyPaid, method: "Razorpay", expected: domain.PaymentModePartial},
		{name: "Pendente é cod", status: domain.FinancialStatusPending, method: "", expected: domain.PaymentModeCOD},
		{name: "Reembolsado pelo razorpay é prepaid", status: domain.FinancialStatusRefunded, method: "Razorpay Secure (UPI, Cards)", expected: domain.PaymentModePrepaid},
		{name: "Cancelado sem gateway conhecido é cod", status: domain.FinancialStatusVoided, method: "manual", expected: domain.PaymentModeCOD},
		{name: "Status desconhecido com razorpay é prepaid", status: "authorized", method: "razorpay", expected: domain.PaymentModePrepaid},
		{name: "Status desconhecido sem gateway é unknown", status: "", method: "", expected: domain.PaymentModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPaymentMethod(tt.status, tt.method))
		})
	}
}
