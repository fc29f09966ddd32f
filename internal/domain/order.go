package domain

import "time"

type FinancialStatus string

const (
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusPending           FinancialStatus = "pending"
	FinancialStatusVoided            FinancialStatus = "voided"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
)

type PaymentMode string

const (
	PaymentModePrepaid PaymentMode = "prepaid"
	PaymentModePartial PaymentMode = "partial"
	PaymentModeCOD     PaymentMode = "cod"
	PaymentModeUnknown PaymentMode = "unknown"
)

type LineItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

// OrderRecord é um pedido do export da loja, já agregado por order_id
type OrderRecord struct {
	OrderID           string          `json:"order_id"`
	ShopifyID         string          `json:"shopify_id,omitempty"`
	Email             string          `json:"email,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	BillingPhone      string          `json:"billing_phone,omitempty"`
	BillingName       string          `json:"billing_name,omitempty"`
	ShippingName      string          `json:"shipping_name,omitempty"`
	ShippingCity      string          `json:"shipping_city,omitempty"`
	ShippingState     string          `json:"shipping_state,omitempty"`
	ShippingPincode   string          `json:"shipping_pincode,omitempty"`
	Subtotal          float64         `json:"subtotal"`
	Total             float64         `json:"total"`
	DiscountCode      string          `json:"discount_code,omitempty"`
	DiscountAmount    float64         `json:"discount_amount"`
	RefundedAmount    float64         `json:"refunded_amount"`
	FinancialStatus   FinancialStatus `json:"financial_status"`
	FulfillmentStatus string          `json:"fulfillment_status,omitempty"`
	PaymentMethodRaw  string          `json:"payment_method_raw,omitempty"`
	PaymentMode       PaymentMode     `json:"payment_mode"`
	CreatedAt         *time.Time      `json:"created_at,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	Source            string          `json:"source,omitempty"`
	Tags              string          `json:"tags,omitempty"`
	LineItems         []LineItem      `json:"line_items"`
	ImportBatchID     string          `json:"import_batch_id,omitempty"`
}

// TotalQuantity soma as quantidades de todos os itens do pedido
func (o OrderRecord) TotalQuantity() int {
	total := 0
	for _, item := range o.LineItems {
		total += item.Quantity
	}
	return total
}

// LineItemNames junta os nomes dos itens não vazios
func (o OrderRecord) LineItemNames() []string {
	names := make([]string, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if item.Name != "" {
			names = append(names, item.Name)
		}
	}
	return names
}
