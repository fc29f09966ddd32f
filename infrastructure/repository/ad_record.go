package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/infrastructure/database/postgres"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const (
	adRecordsTable = "ad_daily_records"
	adRecordFields = "ad_name, campaign_name, ad_set_name, date, spend, purchases, conversion_value, ctr, hook_rate, cpm, import_batch_id"
)

type AdRecordRepository interface {
	UpsertMany(ctx context.Context, records []domain.AdDailyRecord) (inserted, updated int, err error)
	ListAdNames(ctx context.Context) ([]string, error)
	GetHistory(ctx context.Context, adName string) ([]domain.AdDailyRecord, error)
}

type adRecordRepository struct {
	conn *postgres.Connection
}

func NewAdRecordRepository(conn *postgres.Connection) AdRecordRepository {
	return &adRecordRepository{
		conn: conn,
	}
}

// UpsertMany grava os registros por (ad_name, date); a última linha repetida no lote prevalece
func (r *adRecordRepository) UpsertMany(ctx context.Context, records []domain.AdDailyRecord) (int, int, error) {
	records = dedupeAdRecords(records)
	if len(records) == 0 {
		return 0, 0, nil
	}

	var inserted, updated int
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, bounds := range chunks(len(records), upsertChunkSize) {
			builder := psql.
				Insert(adRecordsTable).
				Columns("ad_name", "campaign_name", "ad_set_name", "date", "spend", "purchases",
					"conversion_value", "ctr", "hook_rate", "cpm", "import_batch_id")

			for _, rec := range records[bounds[0]:bounds[1]] {
				builder = builder.Values(
					rec.AdName,
					rec.CampaignName,
					rec.AdSetName,
					rec.Date.Format(dateLayout),
					rec.Spend,
					rec.Purchases,
					rec.ConversionValue,
					rec.CTR,
					rec.HookRate,
					rec.CPM,
					rec.ImportBatchID,
				)
			}

			builder = builder.Suffix(`
				ON CONFLICT (ad_name, date) DO UPDATE SET
					campaign_name = EXCLUDED.campaign_name,
					ad_set_name = EXCLUDED.ad_set_name,
					spend = EXCLUDED.spend,
					purchases = EXCLUDED.purchases,
					conversion_value = EXCLUDED.conversion_value,
					ctr = EXCLUDED.ctr,
					hook_rate = EXCLUDED.hook_rate,
					cpm = EXCLUDED.cpm,
					import_batch_id = EXCLUDED.import_batch_id,
					updated_at = NOW()
			`)

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

func (r *adRecordRepository) ListAdNames(ctx context.Context) ([]string, error) {
	query, args, err := psql.
		Select("DISTINCT ad_name").
		From(adRecordsTable).
		OrderBy("ad_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome do anúncio: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return names, nil
}

// GetHistory devolve o histórico do anúncio em ordem cronológica
func (r *adRecordRepository) GetHistory(ctx context.Context, adName string) ([]domain.AdDailyRecord, error) {
	query, args, err := psql.
		Select(adRecordFields).
		From(adRecordsTable).
		Where("ad_name = ?", adName).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	history := make([]domain.AdDailyRecord, 0)
	for rows.Next() {
		rec, err := r.scanRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
		}
		history = append(history, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}

func (r *adRecordRepository) scanRecordRows(rows *sql.Rows) (domain.AdDailyRecord, error) {
	var rec domain.AdDailyRecord
	var campaign, adSet, batchID sql.NullString

	err := rows.Scan(
		&rec.AdName,
		&campaign,
		&adSet,
		&rec.Date,
		&rec.Spend,
		&rec.Purchases,
		&rec.ConversionValue,
		&rec.CTR,
		&rec.HookRate,
		&rec.CPM,
		&batchID,
	)
	if err != nil {
		return rec, err
	}

	rec.CampaignName = nullString(campaign)
	rec.AdSetName = nullString(adSet)
	rec.ImportBatchID = nullString(batchID)

	return rec, nil
}

func dedupeAdRecords(records []domain.AdDailyRecord) []domain.AdDailyRecord {
	type key struct {
		name string
		date string
	}

	position := make(map[key]int, len(records))
	out := make([]domain.AdDailyRecord, 0, len(records))
	for _, rec := range records {
		k := key{rec.AdName, rec.Date.Format(dateLayout)}
		if i, ok := position[k]; ok {
			out[i] = rec
			continue
		}
		position[k] = len(out)
		out = append(out, rec)
	}
	return out
}
