package shopify

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/reconciliation"
)

const (
	colName              = "Name"
	colID                = "Id"
	colEmail             = "Email"
	colPhone             = "Phone"
	colBillingPhone      = "Billing Phone"
	colBillingName       = "Billing Name"
	colShippingName      = "Shipping Name"
	colShippingCity      = "Shipping City"
	colShippingProvince  = "Shipping Province"
	colShippingZip       = "Shipping Zip"
	colSubtotal          = "Subtotal"
	colTotal             = "Total"
	colDiscountCode      = "Discount Code"
	colDiscountAmount    = "Discount Amount"
	colRefundedAmount    = "Refunded Amount"
	colFinancialStatus   = "Financial Status"
	colFulfillmentStatus = "Fulfillment Status"
	colPaymentMethod     = "Payment Method"
	colCreatedAt         = "Created at"
	colCancelledAt       = "Cancelled at"
	colSource            = "Source"
	colTags              = "Tags"
	colLineitemName      = "Lineitem name"
	colLineitemSKU       = "Lineitem sku"
	colLineitemQuantity  = "Lineitem quantity"
	colLineitemPrice     = "Lineitem price"
	colLineitemDiscount  = "Lineitem discount"
)

var requiredColumns = []string{colName, colTotal, colFinancialStatus}

// ParseResult traz os pedidos agregados do export
type ParseResult struct {
	Orders         []domain.OrderRecord
	LineItemsCount int
}

// Parse lê o export de pedidos. Um pedido com vários itens ocupa várias linhas:
// os itens são agregados e os dados do cliente vêm da primeira linha.
func Parse(r io.Reader, fileName string) (*ParseResult, error) {
	table, err := tabular.Read(r, fileName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler export de pedidos")
	}

	return FromTable(table)
}

func FromTable(table *tabular.Table) (*ParseResult, error) {
	if missing := table.Missing(requiredColumns...); len(missing) > 0 {
		return nil, &tabular.MissingColumnsError{Columns: missing, Available: table.Header}
	}

	result := &ParseResult{Orders: make([]domain.OrderRecord, 0)}
	position := make(map[string]int)

	for _, row := range table.Rows {
		orderID, ok := reconciliation.NormalizeOrderID(row.String(colName))
		if !ok {
			continue
		}

		quantity, ok := row.Int(colLineitemQuantity)
		if !ok || quantity == 0 {
			quantity = 1
		}
		item := domain.LineItem{
			Name:     row.String(colLineitemName),
			SKU:      row.String(colLineitemSKU),
			Quantity: quantity,
			Price:    row.FloatOrZero(colLineitemPrice),
			Discount: row.FloatOrZero(colLineitemDiscount),
		}
		result.LineItemsCount++

		if i, seen := position[orderID]; seen {
			result.Orders[i].LineItems = append(result.Orders[i].LineItems, item)
			continue
		}

		order := orderFromRow(orderID, row)
		order.LineItems = []domain.LineItem{item}
		position[orderID] = len(result.Orders)
		result.Orders = append(result.Orders, order)
	}

	return result, nil
}

func orderFromRow(orderID string, row tabular.Row) domain.OrderRecord {
	financialStatus := reconciliation.NormalizeFinancialStatus(row.String(colFinancialStatus))
	paymentMethod := row.String(colPaymentMethod)

	email, _ := reconciliation.NormalizeEmail(row.String(colEmail))
	phone, _ := reconciliation.NormalizePhone(row.String(colPhone))
	billingPhone, _ := reconciliation.NormalizePhone(row.String(colBillingPhone))

	return domain.OrderRecord{
		OrderID:           orderID,
		ShopifyID:         row.String(colID),
		Email:             email,
		Phone:             phone,
		BillingPhone:      billingPhone,
		BillingName:       row.String(colBillingName),
		ShippingName:      row.String(colShippingName),
		ShippingCity:      row.String(colShippingCity),
		ShippingState:     row.String(colShippingProvince),
		ShippingPincode:   row.String(colShippingZip),
		Subtotal:          row.FloatOrZero(colSubtotal),
		Total:             row.FloatOrZero(colTotal),
		DiscountCode:      row.String(colDiscountCode),
		DiscountAmount:    row.FloatOrZero(colDiscountAmount),
		RefundedAmount:    row.FloatOrZero(colRefundedAmount),
		FinancialStatus:   financialStatus,
		FulfillmentStatus: row.String(colFulfillmentStatus),
		PaymentMethodRaw:  paymentMethod,
		PaymentMode:       reconciliation.ClassifyPaymentMethod(financialStatus, paymentMethod),
		CreatedAt:         row.Date(colCreatedAt),
		CancelledAt:       row.Date(colCancelledAt),
		Source:            row.String(colSource),
		Tags:              row.String(colTags),
	}
}
