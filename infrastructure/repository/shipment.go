package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const shipmentsTable = "shipments"

var shipmentColumns = []string{
	"awb", "order_id", "status_raw", "status", "drop_name", "drop_phone", "drop_email",
	"drop_city", "drop_state", "drop_pincode", "courier_partner", "payment_mode",
	"shipment_created_at", "pickup_at", "delivered_at", "rto_delivered_at",
	"min_tat", "max_tat", "ndr_status", "total_attempts", "latest_remark",
	"merchant_price", "merchant_price_rto", "import_batch_id",
}

type ShipmentRepository interface {
	UpsertMany(ctx context.Context, shipments []domain.ShipmentRecord) (inserted, updated int, err error)
	ListAll(ctx context.Context) ([]domain.ShipmentRecord, error)
}

type shipmentRepository struct {
	conn *postgres.Connection
}

func NewShipmentRepository(conn *postgres.Connection) ShipmentRepository {
	return &shipmentRepository{
		conn: conn,
	}
}

// UpsertMany grava os envios pela AWB
func (r *shipmentRepository) UpsertMany(ctx context.Context, shipments []domain.ShipmentRecord) (int, int, error) {
	shipments = dedupeShipments(shipments)
	if len(shipments) == 0 {
		return 0, 0, nil
	}

	var inserted, updated int
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, bounds := range chunks(len(shipments), upsertChunkSize) {
			builder := psql.Insert(shipmentsTable).Columns(shipmentColumns...)

			for _, s := range shipments[bounds[0]:bounds[1]] {
				builder = builder.Values(
					s.AWB,
					s.OrderID,
					s.StatusRaw,
					string(s.Status),
					s.DropName,
					s.DropPhone,
					s.DropEmail,
					s.DropCity,
					s.DropState,
					s.DropPincode,
					s.CourierPartner,
					s.PaymentMode,
					s.CreatedAt,
					s.PickupAt,
					s.DeliveredAt,
					s.RTODeliveredAt,
					s.MinTAT,
					s.MaxTAT,
					s.NDRStatus,
					s.TotalAttempts,
					s.LatestRemark,
					s.MerchantPrice,
					s.MerchantPriceRTO,
					s.ImportBatchID,
				)
			}

			builder = builder.Suffix(upsertSetClause("awb", shipmentColumns))

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

func (r *shipmentRepository) ListAll(ctx context.Context) ([]domain.ShipmentRecord, error) {
	query, args, err := psql.
		Select(shipmentColumns...).
		From(shipmentsTable).
		OrderBy("shipment_created_at ASC NULLS LAST", "awb ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shipments := make([]domain.ShipmentRecord, 0)
	for rows.Next() {
		shipment, err := r.scanShipmentRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear envio: %w", err)
		}
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shipments, nil
}

func (r *shipmentRepository) scanShipmentRows(rows *sql.Rows) (domain.ShipmentRecord, error) {
	var s domain.ShipmentRecord
	var status string
	var dropName, dropPhone, dropEmail, dropCity, dropState, dropPincode sql.NullString
	var courier, paymentMode, ndr, remark, batchID sql.NullString

	err := rows.Scan(
		&s.AWB,
		&s.OrderID,
		&s.StatusRaw,
		&status,
		&dropName,
		&dropPhone,
		&dropEmail,
		&dropCity,
		&dropState,
		&dropPincode,
		&courier,
		&paymentMode,
		&s.CreatedAt,
		&s.PickupAt,
		&s.DeliveredAt,
		&s.RTODeliveredAt,
		&s.MinTAT,
		&s.MaxTAT,
		&ndr,
		&s.TotalAttempts,
		&remark,
		&s.MerchantPrice,
		&s.MerchantPriceRTO,
		&batchID,
	)
	if err != nil {
		return s, err
	}

	s.Status = domain.DeliveryStatus(status)
	s.DropName = nullString(dropName)
	s.DropPhone = nullString(dropPhone)
	s.DropEmail = nullString(dropEmail)
	s.DropCity = nullString(dropCity)
	s.DropState = nullString(dropState)
	s.DropPincode = nullString(dropPincode)
	s.CourierPartner = nullString(courier)
	s.PaymentMode = nullString(paymentMode)
	s.NDRStatus = nullString(ndr)
	s.LatestRemark = nullString(remark)
	s.ImportBatchID = nullString(batchID)

	return s, nil
}

func dedupeShipments(shipments []domain.ShipmentRecord) []domain.ShipmentRecord {
	position := make(map[string]int, len(shipments))
	out := make([]domain.ShipmentRecord, 0, len(shipments))
	for _, s := range shipments {
		if i, ok := position[s.AWB]; ok {
			out[i] = s
			continue
		}
		position[s.AWB] = len(out)
		out = append(out, s)
	}
	return out
}
