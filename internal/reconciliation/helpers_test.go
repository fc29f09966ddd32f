package reconciliation

import (
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func at(day, hour int) *time.Time {
	t := time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func order(id string, status domain.FinancialStatus, total float64, created *time.Time) domain.OrderRecord {
	return domain.OrderRecord{
		OrderID:         id,
		Email:           "cliente" + id + "@loja.com",
		Total:           total,
		Subtotal:        total,
		FinancialStatus: status,
		PaymentMode:     domain.PaymentModePrepaid,
		CreatedAt:       created,
		LineItems: []domain.LineItem{
			{Name: "Camiseta", SKU: "CAM-01", Quantity: 1, Price: total},
		},
	}
}

func shipment(orderID, awb string, status domain.DeliveryStatus, pickup *time.Time) domain.ShipmentRecord {
	return domain.ShipmentRecord{
		AWB:            awb,
		OrderID:        orderID,
		StatusRaw:      string(status),
		Status:         status,
		CourierPartner: "Delhivery",
		PickupAt:       pickup,
	}
}
