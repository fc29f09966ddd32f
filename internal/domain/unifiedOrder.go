package domain

import "time"

type DispatchCategory string

const (
	DispatchFast          DispatchCategory = "fast"
	DispatchNormal        DispatchCategory = "normal"
	DispatchDelayed       DispatchCategory = "delayed"
	DispatchNotDispatched DispatchCategory = "not_dispatched"
)

type RevenueCategory string

const (
	RevenueActual  RevenueCategory = "actual"
	RevenuePending RevenueCategory = "pending"
	RevenueLost    RevenueCategory = "lost"
)

// UnifiedOrder é o pedido conciliado com o seu envio
type UnifiedOrder struct {
	OrderID           string           `json:"order_id"`
	CustomerEmail     string           `json:"customer_email,omitempty"`
	CustomerPhone     string           `json:"customer_phone,omitempty"`
	CustomerName      string           `json:"customer_name,omitempty"`
	CustomerCity      string           `json:"customer_city,omitempty"`
	CustomerState     string           `json:"customer_state,omitempty"`
	CustomerPincode   string           `json:"customer_pincode,omitempty"`
	OrderDate         *time.Time       `json:"order_date,omitempty"`
	TotalAmount       float64          `json:"total_amount"`
	Subtotal          float64          `json:"subtotal"`
	DiscountAmount    float64          `json:"discount_amount"`
	LineItemNames     string           `json:"lineitem_names"`
	TotalQuantity     int              `json:"total_quantity"`
	LineItems         []LineItem       `json:"line_items,omitempty"`
	PaymentMode       PaymentMode      `json:"payment_mode"`
	FinancialStatus   FinancialStatus  `json:"financial_status"`
	AWB               string           `json:"awb,omitempty"`
	DeliveryStatus    DeliveryStatus   `json:"delivery_status"`
	DeliveryStatusRaw string           `json:"delivery_status_raw,omitempty"`
	CourierPartner    string           `json:"courier_partner,omitempty"`
	PickupDate        *time.Time       `json:"pickup_date,omitempty"`
	DeliveryDate      *time.Time       `json:"delivery_date,omitempty"`
	RTODate           *time.Time       `json:"rto_date,omitempty"`
	DispatchHours     *float64         `json:"dispatch_hours"`
	DispatchCategory  DispatchCategory `json:"dispatch_category"`
	IsDelivered       bool             `json:"is_delivered"`
	IsInTransit       bool             `json:"is_in_transit"`
	IsRTO             bool             `json:"is_rto"`
	IsCancelled       bool             `json:"is_cancelled"`
	IsRefunded        bool             `json:"is_refunded"`
	IsNotShipped      bool             `json:"is_not_shipped"`
	RevenueCategory   RevenueCategory  `json:"revenue_category"`
}

// MatchSummary resume uma execução da conciliação
type MatchSummary struct {
	TotalOrders int       `json:"total_orders"`
	Matched     int       `json:"matched"`
	NotShipped  int       `json:"not_shipped"`
	Message     string    `json:"message,omitempty"`
	RanAt       time.Time `json:"ran_at"`
}

// JourneyFilters filtra a busca de pedidos conciliados
type JourneyFilters struct {
	Search         string
	PaymentMode    string
	DeliveryStatus string
	StartDate      *time.Time
	EndDate        *time.Time
	Limit          int
	Offset         int
}

type JourneyPage struct {
	Orders []UnifiedOrder `json:"orders"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
