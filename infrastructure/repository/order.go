package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const ordersTable = "shopify_orders"

var orderColumns = []string{
	"order_id", "shopify_id", "email", "phone", "billing_phone", "billing_name",
	"shipping_name", "shipping_city", "shipping_state", "shipping_pincode",
	"subtotal", "total", "discount_code", "discount_amount", "refunded_amount",
	"financial_status", "fulfillment_status", "payment_method_raw", "payment_mode",
	"order_created_at", "cancelled_at", "source", "tags", "line_items", "import_batch_id",
}

type OrderRepository interface {
	UpsertMany(ctx context.Context, orders []domain.OrderRecord) (inserted, updated int, err error)
	ListAll(ctx context.Context) ([]domain.OrderRecord, error)
	Count(ctx context.Context) (int, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) UpsertMany(ctx context.Context, orders []domain.OrderRecord) (int, int, error) {
	orders = dedupeOrders(orders)
	if len(orders) == 0 {
		return 0, 0, nil
	}

	var inserted, updated int
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, bounds := range chunks(len(orders), upsertChunkSize) {
			builder := psql.Insert(ordersTable).Columns(orderColumns...)

			for _, o := range orders[bounds[0]:bounds[1]] {
				lineItems, err := marshalJSON(o.LineItems)
				if err != nil {
					return err
				}

				builder = builder.Values(
					o.OrderID,
					o.ShopifyID,
					o.Email,
					o.Phone,
					o.BillingPhone,
					o.BillingName,
					o.ShippingName,
					o.ShippingCity,
					o.ShippingState,
					o.ShippingPincode,
					o.Subtotal,
					o.Total,
					o.DiscountCode,
					o.DiscountAmount,
					o.RefundedAmount,
					string(o.FinancialStatus),
					o.FulfillmentStatus,
					o.PaymentMethodRaw,
					string(o.PaymentMode),
					o.CreatedAt,
					o.CancelledAt,
					o.Source,
					o.Tags,
					lineItems,
					o.ImportBatchID,
				)
			}

			builder = builder.Suffix(upsertSetClause("order_id", orderColumns))

			ins, upd, err := upsertCounted(ctx, tx, builder)
			if err != nil {
				return err
			}
			inserted += ins
			updated += upd
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return inserted, updated, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.OrderRecord, error) {
	query, args, err := psql.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("order_created_at DESC NULLS LAST", "order_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.OrderRecord, 0)
	for rows.Next() {
		order, err := r.scanOrderRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(ordersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return total, nil
}

func (r *orderRepository) scanOrderRows(rows *sql.Rows) (domain.OrderRecord, error) {
	var o domain.OrderRecord
	var shopifyID, email, phone, billingPhone, billingName, shippingName sql.NullString
	var city, state, pincode, discountCode, fulfillment, methodRaw, source, tags, batchID sql.NullString
	var financialStatus, paymentMode string
	var lineItems []byte

	err := rows.Scan(
		&o.OrderID,
		&shopifyID,
		&email,
		&phone,
		&billingPhone,
		&billingName,
		&shippingName,
		&city,
		&state,
		&pincode,
		&o.Subtotal,
		&o.Total,
		&discountCode,
		&o.DiscountAmount,
		&o.RefundedAmount,
		&financialStatus,
		&fulfillment,
		&methodRaw,
		&paymentMode,
		&o.CreatedAt,
		&o.CancelledAt,
		&source,
		&tags,
		&lineItems,
		&batchID,
	)
	if err != nil {
		return o, err
	}

	o.ShopifyID = nullString(shopifyID)
	o.Email = nullString(email)
	o.Phone = nullString(phone)
	o.BillingPhone = nullString(billingPhone)
	o.BillingName = nullString(billingName)
	o.ShippingName = nullString(shippingName)
	o.ShippingCity = nullString(city)
	o.ShippingState = nullString(state)
	o.ShippingPincode = nullString(pincode)
	o.DiscountCode = nullString(discountCode)
	o.FulfillmentStatus = nullString(fulfillment)
	o.PaymentMethodRaw = nullString(methodRaw)
	o.Source = nullString(source)
	o.Tags = nullString(tags)
	o.ImportBatchID = nullString(batchID)
	o.FinancialStatus = domain.FinancialStatus(financialStatus)
	o.PaymentMode = domain.PaymentMode(paymentMode)

	if lineItems != nil {
		if err := json.Unmarshal(lineItems, &o.LineItems); err != nil {
			return o, fmt.Errorf("erro ao deserializar JSON de line_items: %w", err)
		}
	}

	return o, nil
}

// upsertSetClause monta o ON CONFLICT que sobrescreve todas as colunas exceto a chave
func upsertSetClause(key string, columns []string) string {
	clause := fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET ", key)
	for _, column := range columns {
		if column == key {
			continue
		}
		clause += fmt.Sprintf("%s = EXCLUDED.%s, ", column, column)
	}
	return clause + "updated_at = NOW()"
}

func dedupeOrders(orders []domain.OrderRecord) []domain.OrderRecord {
	position := make(map[string]int, len(orders))
	out := make([]domain.OrderRecord, 0, len(orders))
	for _, o := range orders {
		if i, ok := position[o.OrderID]; ok {
			out[i] = o
			continue
		}
		position[o.OrderID] = len(out)
		out = append(out, o)
	}
	return out
}
