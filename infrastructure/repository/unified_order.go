package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const unifiedOrdersTable = "unified_orders"

var unifiedOrderColumns = []string{
	"order_id", "customer_email", "customer_phone", "customer_name", "customer_city",
	"customer_state", "customer_pincode", "order_date", "total_amount", "subtotal",
	"discount_amount", "lineitem_names", "total_quantity", "line_items", "payment_mode",
	"financial_status", "awb", "delivery_status", "delivery_status_raw", "courier_partner",
	"pickup_date", "delivery_date", "rto_date", "dispatch_hours", "dispatch_category",
	"is_delivered", "is_in_transit", "is_rto", "is_cancelled", "is_refunded",
	"is_not_shipped", "revenue_category",
}

// UnifiedOrderRepository guarda o resultado da última conciliação
type UnifiedOrderRepository interface {
	ReplaceAll(ctx context.Context, orders []domain.UnifiedOrder) error
	List(ctx context.Context, from, to *time.Time) ([]domain.UnifiedOrder, error)
	Search(ctx context.Context, filters domain.JourneyFilters) (domain.JourneyPage, error)
}

type unifiedOrderRepository struct {
	conn *postgres.Connection
}

func NewUnifiedOrderRepository(conn *postgres.Connection) UnifiedOrderRepository {
	return &unifiedOrderRepository{
		conn: conn,
	}
}

// ReplaceAll apaga e regrava a tabela numa única transação
func (r *unifiedOrderRepository) ReplaceAll(ctx context.Context, orders []domain.UnifiedOrder) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := psql.Delete(unifiedOrdersTable).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return dbError(err)
		}

		for _, bounds := range chunks(len(orders), upsertChunkSize) {
			builder := psql.Insert(unifiedOrdersTable).Columns(unifiedOrderColumns...)

			for _, u := range orders[bounds[0]:bounds[1]] {
				lineItems, err := marshalJSON(u.LineItems)
				if err != nil {
					return err
				}

				builder = builder.Values(
					u.OrderID,
					u.CustomerEmail,
					u.CustomerPhone,
					u.CustomerName,
					u.CustomerCity,
					u.CustomerState,
					u.CustomerPincode,
					u.OrderDate,
					u.TotalAmount,
					u.Subtotal,
					u.DiscountAmount,
					u.LineItemNames,
					u.TotalQuantity,
					lineItems,
					string(u.PaymentMode),
					string(u.FinancialStatus),
					u.AWB,
					string(u.DeliveryStatus),
					u.DeliveryStatusRaw,
					u.CourierPartner,
					u.PickupDate,
					u.DeliveryDate,
					u.RTODate,
					u.DispatchHours,
					string(u.DispatchCategory),
					u.IsDelivered,
					u.IsInTransit,
					u.IsRTO,
					u.IsCancelled,
					u.IsRefunded,
					u.IsNotShipped,
					string(u.RevenueCategory),
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return dbError(err)
			}
		}

		return nil
	})
}

func (r *unifiedOrderRepository) List(ctx context.Context, from, to *time.Time) ([]domain.UnifiedOrder, error) {
	builder := withDateRange(psql.Select(unifiedOrderColumns...).From(unifiedOrdersTable), from, to)

	query, args, err := builder.
		OrderBy("order_date DESC NULLS LAST", "order_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

// Search aplica os filtros da jornada do pedido e pagina do mais recente para o mais antigo
func (r *unifiedOrderRepository) Search(ctx context.Context, filters domain.JourneyFilters) (domain.JourneyPage, error) {
	page := domain.JourneyPage{Orders: []domain.UnifiedOrder{}, Limit: filters.Limit, Offset: filters.Offset}

	where := journeyConditions(filters)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From(unifiedOrdersTable).Where(where).ToSql()
	if err != nil {
		return page, fmt.Errorf("erro ao construir a query: %w", err)
	}
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	query, args, err := psql.
		Select(unifiedOrderColumns...).
		From(unifiedOrdersTable).
		Where(where).
		OrderBy("order_date DESC NULLS LAST", "order_id ASC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset)).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("erro ao construir a query: %w", err)
	}

	orders, err := r.query(ctx, query, args...)
	if err != nil {
		return page, err
	}
	page.Orders = orders

	return page, nil
}

func (r *unifiedOrderRepository) query(ctx context.Context, query string, args ...any) ([]domain.UnifiedOrder, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.UnifiedOrder, 0)
	for rows.Next() {
		order, err := r.scanUnifiedOrderRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido conciliado: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func journeyConditions(filters domain.JourneyFilters) squirrel.And {
	where := squirrel.And{}

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"order_id": pattern},
			squirrel.ILike{"customer_phone": pattern},
			squirrel.ILike{"customer_email": pattern},
		})
	}
	if filters.PaymentMode != "" {
		where = append(where, squirrel.Eq{"payment_mode": filters.PaymentMode})
	}
	if filters.DeliveryStatus != "" {
		where = append(where, squirrel.Eq{"delivery_status": filters.DeliveryStatus})
	}
	if filters.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"order_date::date": filters.StartDate.Format(dateLayout)})
	}
	if filters.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"order_date::date": filters.EndDate.Format(dateLayout)})
	}

	return where
}

// withDateRange filtra por data do pedido, inclusivo nas duas pontas
func withDateRange(builder squirrel.SelectBuilder, from, to *time.Time) squirrel.SelectBuilder {
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"order_date::date": from.Format(dateLayout)})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"order_date::date": to.Format(dateLayout)})
	}
	return builder
}

func (r *unifiedOrderRepository) scanUnifiedOrderRows(rows *sql.Rows) (domain.UnifiedOrder, error) {
	var u domain.UnifiedOrder
	var email, phone, name, city, state, pincode, itemNames sql.NullString
	var awb, statusRaw, courier sql.NullString
	var paymentMode, financialStatus, deliveryStatus, dispatchCategory, revenueCategory string
	var lineItems []byte

	err := rows.Scan(
		&u.OrderID,
		&email,
		&phone,
		&name,
		&city,
		&state,
		&pincode,
		&u.OrderDate,
		&u.TotalAmount,
		&u.Subtotal,
		&u.DiscountAmount,
		&itemNames,
		&u.TotalQuantity,
		&lineItems,
		&paymentMode,
		&financialStatus,
		&awb,
		&deliveryStatus,
		&statusRaw,
		&courier,
		&u.PickupDate,
		&u.DeliveryDate,
		&u.RTODate,
		&u.DispatchHours,
		&dispatchCategory,
		&u.IsDelivered,
		&u.IsInTransit,
		&u.IsRTO,
		&u.IsCancelled,
		&u.IsRefunded,
		&u.IsNotShipped,
		&revenueCategory,
	)
	if err != nil {
		return u, err
	}

	u.CustomerEmail = nullString(email)
	u.CustomerPhone = nullString(phone)
	u.CustomerName = nullString(name)
	u.CustomerCity = nullString(city)
	u.CustomerState = nullString(state)
	u.CustomerPincode = nullString(pincode)
	u.LineItemNames = nullString(itemNames)
	u.AWB = nullString(awb)
	u.DeliveryStatusRaw = nullString(statusRaw)
	u.CourierPartner = nullString(courier)
	u.PaymentMode = domain.PaymentMode(paymentMode)
	u.FinancialStatus = domain.FinancialStatus(financialStatus)
	u.DeliveryStatus = domain.DeliveryStatus(deliveryStatus)
	u.DispatchCategory = domain.DispatchCategory(dispatchCategory)
	u.RevenueCategory = domain.RevenueCategory(revenueCategory)

	if lineItems != nil {
		if err := json.Unmarshal(lineItems, &u.LineItems); err != nil {
			return u, fmt.Errorf("erro ao deserializar JSON de line_items: %w", err)
		}
	}

	return u, nil
}
