package domain

type BreakdownEntry struct {
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type DispatchBreakdownEntry struct {
	Count      int      `json:"count"`
	AvgHours   *float64 `json:"avg_hours"`
	Percentage float64  `json:"percentage"`
}

// MetricsSnapshot consolida os indicadores do painel de logística
type MetricsSnapshot struct {
	TotalOrders      int     `json:"total_orders"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ProjectedAOV     float64 `json:"projected_aov"`
	ActualRevenue    float64 `json:"actual_revenue"`
	ActualAOV        float64 `json:"actual_aov"`
	LostRevenue      float64 `json:"lost_revenue"`
	PendingRevenue   float64 `json:"pending_revenue"`
	LostPercentage   float64 `json:"lost_percentage"`

	DeliveryRate float64 `json:"delivery_rate"`
	RTORate      float64 `json:"rto_rate"`

	PaymentBreakdown  map[PaymentMode]BreakdownEntry              `json:"payment_breakdown"`
	DeliveryBreakdown map[DeliveryStatus]BreakdownEntry           `json:"delivery_breakdown"`
	DispatchBreakdown map[DispatchCategory]DispatchBreakdownEntry `json:"dispatch_breakdown"`

	DeliveredOrders  int      `json:"delivered_orders"`
	LostOrders       int      `json:"lost_orders"`
	PendingOrders    int      `json:"pending_orders"`
	InTransitOrders  int      `json:"in_transit_orders"`
	InTransitAmount  float64  `json:"in_transit_amount"`
	RTOOrders        int      `json:"rto_orders"`
	RTOAmount        float64  `json:"rto_amount"`
	CancelledOrders  int      `json:"cancelled_orders"`
	CancelledAmount  float64  `json:"cancelled_amount"`
	NotShippedOrders int      `json:"not_shipped_orders"`
	NotShippedAmount float64  `json:"not_shipped_amount"`
	RefundedOrders   int      `json:"refunded_orders"`
	RefundedAmount   float64  `json:"refunded_amount"`
	AvgDispatchHours *float64 `json:"avg_dispatch_hours"`
}

type SKUSales struct {
	SKU        string  `json:"sku"`
	ItemName   string  `json:"item_name"`
	TotalQty   int     `json:"total_qty"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type SKUSalesReport struct {
	Items         []SKUSales `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
}
