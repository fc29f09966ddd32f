package domain

import "time"

type DeliveryStatus string

const (
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusInTransit  DeliveryStatus = "in_transit"
	DeliveryStatusRTO        DeliveryStatus = "rto"
	DeliveryStatusCancelled  DeliveryStatus = "cancelled"
	DeliveryStatusNotShipped DeliveryStatus = "not_shipped"
	DeliveryStatusUnknown    DeliveryStatus = "unknown"
)

// ShipmentRecord é uma linha do relatório MIS da transportadora
type ShipmentRecord struct {
	AWB              string         `json:"awb"`
	OrderID          string         `json:"order_id"`
	StatusRaw        string         `json:"status_raw"`
	Status           DeliveryStatus `json:"status"`
	DropName         string         `json:"drop_name,omitempty"`
	DropPhone        string         `json:"drop_phone,omitempty"`
	DropEmail        string         `json:"drop_email,omitempty"`
	DropCity         string         `json:"drop_city,omitempty"`
	DropState        string         `json:"drop_state,omitempty"`
	DropPincode      string         `json:"drop_pincode,omitempty"`
	CourierPartner   string         `json:"courier_partner,omitempty"`
	PaymentMode      string         `json:"payment_mode,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	PickupAt         *time.Time     `json:"pickup_at,omitempty"`
	DeliveredAt      *time.Time     `json:"delivered_at,omitempty"`
	RTODeliveredAt   *time.Time     `json:"rto_delivered_at,omitempty"`
	MinTAT           *int           `json:"min_tat,omitempty"`
	MaxTAT           *int           `json:"max_tat,omitempty"`
	NDRStatus        string         `json:"ndr_status,omitempty"`
	TotalAttempts    *int           `json:"total_attempts,omitempty"`
	LatestRemark     string         `json:"latest_remark,omitempty"`
	MerchantPrice    *float64       `json:"merchant_price,omitempty"`
	MerchantPriceRTO *float64       `json:"merchant_price_rto,omitempty"`
	ImportBatchID    string         `json:"import_batch_id,omitempty"`
}
